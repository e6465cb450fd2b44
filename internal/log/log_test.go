package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/op/go-logging.v1"
)

func TestLevelFromString(t *testing.T) {
	cases := map[string]logging.Level{
		"ERROR":   logging.ERROR,
		"warning": logging.WARNING,
		"Notice":  logging.NOTICE,
		"INFO":    logging.INFO,
		"debug":   logging.DEBUG,
	}
	for s, want := range cases {
		lvl, err := LevelFromString(s)
		require.NoError(t, err)
		require.Equal(t, want, lvl)
	}

	_, err := LevelFromString("LOUD")
	require.Error(t, err)
}

func TestWriterBackend(t *testing.T) {
	var buf bytes.Buffer
	b, err := NewWriter(&buf, "NOTICE")
	require.NoError(t, err)

	l := b.GetLogger("bsgs")
	l.Debugf("hidden %d", 1)
	l.Noticef("k=%d", 7777)

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "NOTI bsgs: k=7777")

	b.SetLevel(logging.DEBUG, "")
	require.True(t, b.IsEnabledFor(logging.DEBUG, "bsgs"))
	l.Debugf("shown %d", 2)
	require.Contains(t, buf.String(), "DEBU bsgs: shown 2")
}

func TestFileBackend(t *testing.T) {
	f := filepath.Join(t.TempDir(), "d3ecdlp.log")
	b, err := New(f, "INFO", false)
	require.NoError(t, err)

	b.GetLogger("demo").Infof("solved")
	require.NoError(t, b.Close())

	raw, err := os.ReadFile(f)
	require.NoError(t, err)
	require.Contains(t, string(raw), "INFO demo: solved")
}

func TestDisabledBackend(t *testing.T) {
	b, err := New("", "DEBUG", true)
	require.NoError(t, err)
	b.GetLogger("demo").Errorf("dropped")
	require.NoError(t, b.Close())

	_, err = New("", "LOUD", false)
	require.Error(t, err)
}
