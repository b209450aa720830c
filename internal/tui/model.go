package tui

import (
	"io"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"geomap/internal/geom"
	"geomap/internal/grid"
)

// simplifySteps are the proportions cycled by the "s" key.
var simplifySteps = []float64{0, 1, 10, 100}

// Options configure the viewer from resolved CLI settings.
type Options struct {
	Simplify float64
	Outline  bool
	Load     geom.LoadOptions
	Logger   *log.Logger
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string
	logger *log.Logger

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string
	loadOpt geom.LoadOptions

	// Data
	data     geom.Dataset
	simplify float64
	outline  bool
	layers   layers

	// last render, recomputed when size, data or options change
	mapW     int
	mapH     int
	mapLines []string
	grid     grid.Grid
	hasGrid  bool

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// inspect popup
	inspectPopup string

	// hover state
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64

	// attributes table
	showAttrs bool
	tbl       table.Model
}

func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{
		showSidebar: false,
		helpVisible: true,
		status:      "geomap ready",
		logger:      logger,
		loadOpt:     opts.Load,
		simplify:    opts.Simplify,
		outline:     opts.Outline,
		layers:      allLayers(),
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here, one geometry per line. Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// attributes table setup (columns will be inferred per dataset)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(path string, opts Options) Model {
	m := New(opts)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }
