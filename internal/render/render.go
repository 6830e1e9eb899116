package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/katalvlaran/cityroute/bfs"
	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/index"
	"github.com/katalvlaran/cityroute/planner"
)

// Mode selects the output format.
type Mode int

const (
	// Styled draws tables, trees and colours.
	Styled Mode = iota

	// Plain writes tab-separated lines with no decoration.
	Plain
)

// Renderer writes results to w and error reports to errW in one Mode.
type Renderer struct {
	w    io.Writer
	errW io.Writer
	mode Mode
}

// New returns a Renderer writing results to w and errors to errW.
func New(w, errW io.Writer, mode Mode) *Renderer {
	return &Renderer{w: w, errW: errW, mode: mode}
}

// Title prints a heading. Plain mode omits it.
func (r *Renderer) Title(text string) {
	if r.mode == Plain {
		return
	}
	fmt.Fprintln(r.w, Styles.Title.Render(text))
}

// Success reports a completed action.
func (r *Renderer) Success(text string) {
	if r.mode == Plain {
		fmt.Fprintf(r.w, "OK: %s\n", text)
		return
	}
	fmt.Fprintf(r.w, "%s %s\n", Styles.Success.Render(iconOK), text)
}

// Error reports a failed action on the error writer.
func (r *Renderer) Error(err error) {
	if r.mode == Plain {
		fmt.Fprintf(r.errW, "ERROR: %v\n", err)
		return
	}
	fmt.Fprintf(r.errW, "%s %s\n", Styles.Error.Render(iconError), Styles.Error.Render(err.Error()))
}

// Numbered prints names with 1-based positions: a location listing or
// the visit order of a traversal.
func (r *Renderer) Numbered(title string, names []string) {
	if r.mode == Plain {
		for i, n := range names {
			fmt.Fprintf(r.w, "%d\t%s\n", i+1, n)
		}
		return
	}
	r.Title(title)
	if len(names) == 0 {
		fmt.Fprintln(r.w, Styles.Muted.Render("(none)"))
		return
	}
	rows := make([][]string, len(names))
	for i, n := range names {
		rows[i] = []string{strconv.Itoa(i + 1), n}
	}
	fmt.Fprintln(r.w, r.table([]string{"#", "Location"}, rows))
}

// Connections prints every location with its roads in list order.
func (r *Renderer) Connections(adj []core.Adjacency) {
	if r.mode == Plain {
		for _, a := range adj {
			if len(a.Roads) == 0 {
				fmt.Fprintf(r.w, "%s\t-\t-\n", a.Name)
				continue
			}
			for _, road := range a.Roads {
				fmt.Fprintf(r.w, "%s\t%s\t%d\n", a.Name, road.To, road.Distance)
			}
		}
		return
	}
	r.Title("Road connections")
	rows := make([][]string, 0, len(adj))
	for _, a := range adj {
		if len(a.Roads) == 0 {
			rows = append(rows, []string{a.Name, Styles.Muted.Render("(no roads)"), ""})
			continue
		}
		for i, road := range a.Roads {
			name := a.Name
			if i > 0 {
				name = ""
			}
			rows = append(rows, []string{name, road.To, strconv.Itoa(road.Distance)})
		}
	}
	fmt.Fprintln(r.w, r.table([]string{"Location", "Road to", "km"}, rows))
}

// Route prints the stops and total distance of a route.
func (r *Renderer) Route(route *bfs.Route) {
	if r.mode == Plain {
		fmt.Fprintf(r.w, "%s\t%d\n", strings.Join(route.Stops, " -> "), route.Distance)
		return
	}
	body := strings.Join(route.Stops, arrow) + "\n" +
		Styles.Muted.Render(fmt.Sprintf("%d km, %d hops", route.Distance, route.Hops()))
	fmt.Fprintln(r.w, Styles.Box.Render(Styles.Title.Render("Shortest path")+"\n"+body))
}

// Tree draws the index layout, left subtree before right. Each child is
// tagged L or R so single-child nodes read unambiguously.
func (r *Renderer) Tree(shape *index.Shape) {
	if shape == nil {
		if r.mode == Plain {
			fmt.Fprintln(r.w, "(empty)")
		} else {
			fmt.Fprintln(r.w, Styles.Muted.Render("(empty index)"))
		}
		return
	}
	t := shapeTree(shape.Name, shape)
	if r.mode == Styled {
		r.Title("Index")
		t = t.EnumeratorStyle(Styles.Border).RootStyle(Styles.Title)
	}
	fmt.Fprintln(r.w, t.String())
}

func shapeTree(label string, s *index.Shape) *tree.Tree {
	t := tree.Root(label)
	if s.Left != nil {
		t.Child(shapeChild("L: ", s.Left))
	}
	if s.Right != nil {
		t.Child(shapeChild("R: ", s.Right))
	}

	return t
}

func shapeChild(tag string, s *index.Shape) any {
	if s.Left == nil && s.Right == nil {
		return tag + s.Name
	}

	return shapeTree(tag+s.Name, s)
}

// Stats prints the planner summary.
func (r *Renderer) Stats(s planner.Stats) {
	if r.mode == Plain {
		fmt.Fprintf(r.w, "locations=%d roads=%d height=%d first=%s last=%s\n",
			s.Locations, s.Roads, s.IndexHeight, s.First, s.Last)
		return
	}
	rows := [][]string{
		{"Locations", strconv.Itoa(s.Locations)},
		{"Roads", strconv.Itoa(s.Roads)},
		{"Index height", strconv.Itoa(s.IndexHeight)},
		{"First", s.First},
		{"Last", s.Last},
	}
	fmt.Fprintln(r.w, r.table([]string{"Stat", "Value"}, rows))
}

func (r *Renderer) table(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(Styles.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return Styles.Header
			}
			return Styles.Cell
		}).
		String()
}
