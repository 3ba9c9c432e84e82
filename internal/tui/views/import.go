package views

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/yuanfen/internal/store"
)

// Importer loads profiles from a JSON Lines stream.
type Importer interface {
	Import(ctx context.Context, r io.Reader) (store.ImportResult, error)
}

// ImportExtensions are the file types the import picker lists.
var ImportExtensions = []string{".jsonl", ".ndjson", ".json"}

// ImportedMsg reports a finished import.
type ImportedMsg struct {
	Path   string
	Result store.ImportResult
	Err    error
}

// FileEntry represents a file or directory
type FileEntry struct {
	Name  string
	IsDir bool
	Path  string
}

// ImportModel picks a profile file and imports it.
type ImportModel struct {
	importer   Importer
	currentDir string
	entries    []FileEntry
	selected   int
	offset     int

	importing bool
	last      *ImportedMsg
	err       error

	width  int
	height int
}

// NewImportModel creates the import view rooted at dir. An empty dir starts
// in the home directory.
func NewImportModel(importer Importer, dir string) ImportModel {
	if dir == "" {
		dir, _ = os.UserHomeDir()
	}
	if dir == "" {
		dir = "/"
	}
	m := ImportModel{importer: importer, currentDir: dir}
	m.loadDir()
	return m
}

// SetSize updates the view dimensions.
func (m *ImportModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Capturing reports whether keystrokes go to a text input.
func (m ImportModel) Capturing() bool { return false }

func (m *ImportModel) loadDir() {
	m.entries = nil
	m.selected = 0
	m.offset = 0
	m.err = nil

	entries, err := os.ReadDir(m.currentDir)
	if err != nil {
		m.err = err
		return
	}

	if parent := filepath.Dir(m.currentDir); parent != m.currentDir {
		m.entries = append(m.entries, FileEntry{Name: "..", IsDir: true, Path: parent})
	}

	var dirs, files []FileEntry
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		fe := FileEntry{
			Name:  entry.Name(),
			IsDir: entry.IsDir(),
			Path:  filepath.Join(m.currentDir, entry.Name()),
		}
		switch {
		case fe.IsDir:
			dirs = append(dirs, fe)
		case importable(fe.Name):
			files = append(files, fe)
		}
	}

	byName := func(s []FileEntry) func(i, j int) bool {
		return func(i, j int) bool { return strings.ToLower(s[i].Name) < strings.ToLower(s[j].Name) }
	}
	sort.Slice(dirs, byName(dirs))
	sort.Slice(files, byName(files))

	m.entries = append(m.entries, dirs...)
	m.entries = append(m.entries, files...)
}

func importable(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range ImportExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

func (m ImportModel) importFile(path string) tea.Cmd {
	importer := m.importer
	return func() tea.Msg {
		if importer == nil {
			return ImportedMsg{Path: path, Err: ErrNoProfiles}
		}
		f, err := os.Open(path)
		if err != nil {
			return ImportedMsg{Path: path, Err: err}
		}
		defer f.Close()

		res, err := importer.Import(context.Background(), f)
		return ImportedMsg{Path: path, Result: res, Err: err}
	}
}

// Update handles messages.
func (m ImportModel) Update(msg tea.Msg) (ImportModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ImportedMsg:
		m.importing = false
		m.last = &msg
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.selected < len(m.entries)-1 {
				m.selected++
				m.adjustScroll()
			}
		case "k", "up":
			if m.selected > 0 {
				m.selected--
				m.adjustScroll()
			}
		case "enter", "l", "right":
			if m.selected >= len(m.entries) || m.importing {
				return m, nil
			}
			entry := m.entries[m.selected]
			if entry.IsDir {
				m.currentDir = entry.Path
				m.loadDir()
				return m, nil
			}
			m.importing = true
			m.last = nil
			return m, m.importFile(entry.Path)
		case "backspace", "h":
			if parent := filepath.Dir(m.currentDir); parent != m.currentDir {
				m.currentDir = parent
				m.loadDir()
			}
		case "~":
			if home, _ := os.UserHomeDir(); home != "" {
				m.currentDir = home
				m.loadDir()
			}
		case "g":
			m.selected = 0
			m.offset = 0
		case "G":
			m.selected = max(len(m.entries)-1, 0)
			m.adjustScroll()
		}
	}
	return m, nil
}

func (m *ImportModel) visibleHeight() int {
	return max(m.height-12, 5)
}

func (m *ImportModel) adjustScroll() {
	h := m.visibleHeight()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+h {
		m.offset = m.selected - h + 1
	}
}

// View renders the import view.
func (m ImportModel) View() string {
	var b strings.Builder
	divider := lipgloss.NewStyle().Foreground(ColorBorder).Render(strings.Repeat("─", max(min(m.width-4, 60), 10)))

	b.WriteString(titleStyle.Render("Import Profiles (.jsonl)"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Italic(true).Render(m.currentDir))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(divider)
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(helpStyle.Render("  (no profile files found)"))
		b.WriteString("\n")
	}

	end := min(m.offset+m.visibleHeight(), len(m.entries))
	for i := m.offset; i < end; i++ {
		entry := m.entries[i]

		line := "[FILE] " + entry.Name
		style := rowStyle
		if entry.IsDir {
			line = "[DIR]  " + entry.Name
			style = subtitleStyle.Bold(true)
		}

		if i == m.selected {
			b.WriteString("> " + selectedStyle.Render(line))
		} else {
			b.WriteString("  " + style.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(divider)
	b.WriteString("\n")

	switch {
	case m.importing:
		b.WriteString(loadingStyle.Render("Importing..."))
		b.WriteString("\n")
	case m.last != nil:
		b.WriteString(m.renderResult(*m.last))
	}

	b.WriteString(helpStyle.Render("enter: open/import • backspace: parent • ~: home"))
	return b.String()
}

func (m ImportModel) renderResult(r ImportedMsg) string {
	var b strings.Builder
	name := filepath.Base(r.Path)

	if r.Err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("%s: %v", name, r.Err)))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(ColorSuccess).Render(
		fmt.Sprintf("%s: %d added, %d skipped", name, r.Result.Added, len(r.Result.Skipped))))
	b.WriteString("\n")
	for _, s := range r.Result.Skipped {
		b.WriteString(helpStyle.Render("  skipped " + s))
		b.WriteString("\n")
	}
	return b.String()
}
