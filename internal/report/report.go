// Package report runs every solver against one hidden scalar and renders
// the comparison.
package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"golang.org/x/sync/errgroup"
	"gopkg.in/op/go-logging.v1"

	ecc "github.com/sjnam/d3ecdlp"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
)

var columns = []struct {
	title string
	width int
}{
	{"solver", 18},
	{"k", 12},
	{"work", 10},
	{"perturbations", 16},
	{"time", 12},
	{"", 6},
}

// Solver is a named discrete-log solver.
type Solver struct {
	Name  string
	Solve func(q ecc.Point) (ecc.Result, error)
}

// Solvers returns the solvers compared by the report.
func Solvers(c *ecc.Curve, e *ecc.Endomorphism) []Solver {
	return []Solver{
		{"bsgs", c.BSGS},
		{"bsgs-glv", func(q ecc.Point) (ecc.Result, error) { return c.BSGSGLV(q, e) }},
		{"pollard-rho", c.PollardRho},
		{"pollard-rho-glv", func(q ecc.Point) (ecc.Result, error) { return c.PollardRhoGLV(q, e) }},
		{"pohlig-hellman", c.PohligHellman},
	}
}

// Row is the outcome of one solver.
type Row struct {
	Solver  string
	Result  ecc.Result
	Elapsed time.Duration
}

// Report collects the outcome of every solver on Q = [Secret]G.
type Report struct {
	Curve  *ecc.Curve
	Endo   *ecc.Endomorphism
	Secret uint64
	Q      ecc.Point
	Rows   []Row
}

// Run solves Q = [secret]G with every solver, each on its own goroutine.
// Any solver error, or a recovered k that does not reproduce Q, fails the
// whole run.
func Run(c *ecc.Curve, e *ecc.Endomorphism, secret uint64, log *logging.Logger) (*Report, error) {
	secret %= c.N
	q := c.ScalarBaseMult(secret)
	solvers := Solvers(c, e)
	r := &Report{
		Curve:  c,
		Endo:   e,
		Secret: secret,
		Q:      q,
		Rows:   make([]Row, len(solvers)),
	}

	g := new(errgroup.Group)
	for i, s := range solvers {
		i, s := i, s
		g.Go(func() error {
			start := time.Now()
			res, err := s.Solve(q)
			if err != nil {
				return fmt.Errorf("%s: %w", s.Name, err)
			}
			if !c.ScalarBaseMult(res.K).Equal(q) {
				return fmt.Errorf("%s: recovered k=%d does not reproduce Q", s.Name, res.K)
			}
			r.Rows[i] = Row{Solver: s.Name, Result: res, Elapsed: time.Since(start)}
			if log != nil {
				log.Noticef("%s: k=%d work=%d perturbations=%d", s.Name, res.K, res.Work, res.Perturbations)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Report) row(name string) (Row, bool) {
	for _, row := range r.Rows {
		if row.Solver == name {
			return row, true
		}
	}
	return Row{}, false
}

// Speedup returns the work ratio of the standard solver over its GLV
// counterpart, e.g. Speedup("bsgs").
func (r *Report) Speedup(standard string) float64 {
	std, ok1 := r.row(standard)
	glv, ok2 := r.row(standard + "-glv")
	if !ok1 || !ok2 || glv.Result.Work == 0 {
		return 0
	}
	return float64(std.Result.Work) / float64(glv.Result.Work)
}

func renderRow(cells ...string) string {
	var b strings.Builder
	for i, cell := range cells {
		b.WriteString(cellStyle.Width(columns[i].width).Render(cell))
	}
	return b.String()
}

// Render returns the styled comparison table.
func (r *Report) Render() string {
	c, e := r.Curve, r.Endo
	name := c.Name
	if name == "" {
		name = "curve"
	}

	lines := []string{
		headerStyle.Render(fmt.Sprintf("%s: y² = x³ + %d over F_%d", name, c.B, c.P)),
		infoStyle.Render(fmt.Sprintf("n = %d  G = %v  β = %d  λ = %d", c.N, c.G, e.Beta, e.Lambda)),
		infoStyle.Render(fmt.Sprintf("Q = [%d]G = %v", r.Secret, r.Q)),
		"",
	}

	titles := make([]string, len(columns))
	for i, col := range columns {
		titles[i] = col.title
	}
	lines = append(lines, headerStyle.Render(renderRow(titles...)))

	for _, row := range r.Rows {
		status := okStyle.Render("ok")
		if row.Result.K != r.Secret {
			status = failStyle.Render("≠")
		}
		lines = append(lines, renderRow(
			row.Solver,
			fmt.Sprintf("%d", row.Result.K),
			fmt.Sprintf("%d", row.Result.Work),
			fmt.Sprintf("%d", row.Result.Perturbations),
			row.Elapsed.Round(time.Microsecond).String(),
			status,
		))
	}

	lines = append(lines, "",
		fmt.Sprintf("BSGS speedup  %.2fx", r.Speedup("bsgs")),
		fmt.Sprintf("rho speedup   %.2fx", r.Speedup("pollard-rho")),
		infoStyle.Render(fmt.Sprintf("expected      √6 ≈ %.2fx", math.Sqrt(6))),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
