// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-dabria/internal/app"
	"github.com/MKhiriev/go-dabria/internal/live"
	"github.com/MKhiriev/go-dabria/internal/service"
	"github.com/MKhiriev/go-dabria/internal/workers"
	"github.com/MKhiriev/go-dabria/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

const statusTimeout = 2 * time.Second

// PageSaver queues edited pages for saving and reports the outcome.
type PageSaver interface {
	Submit(userID string, page int, content string)
	// Flush writes every queued page now and returns the outcomes.
	Flush(ctx context.Context) []workers.SaveResult
	Results() <-chan workers.SaveResult
}

// JournalModel is the writing screen of a signed-in user: one editor per
// page, the quota gauge and the date.
//
// The editors are filled from the page subscriptions until the user starts
// typing on a page; from then on the typed text is what the editor shows,
// also when saving it fails.
//
// Leaving the screen writes the queued pages first. While a page holds text
// the journal rejected, the first esc or ctrl+l only warns; pressing it again
// leaves without saving.
type JournalModel struct {
	ctx     context.Context
	user    models.User
	journal service.JournalService
	saver   PageSaver

	pageSubs []*live.Subscription[*models.Entry]
	usageSub *live.Subscription[int64]

	editors []textarea.Model
	saved   []*models.Entry
	edited  []bool
	unsaved []bool
	page    int

	usage   models.Usage
	status  string
	warning string

	copyToClipboard func(string) error
	now             func() time.Time

	// flushing is set while queued pages are written before leaving.
	flushing    bool
	leaveAnyway bool
	logout      bool
}

// NewJournalModel creates a [JournalModel]. pageSubs holds one subscription
// per page, first page first.
func NewJournalModel(
	ctx context.Context,
	user models.User,
	journal service.JournalService,
	saver PageSaver,
	pageSubs []*live.Subscription[*models.Entry],
	usageSub *live.Subscription[int64],
) *JournalModel {
	editors := make([]textarea.Model, len(pageSubs))
	for i := range editors {
		ta := textarea.New()
		ta.Placeholder = "Dear diary..."
		ta.CharLimit = 0
		ta.MaxHeight = 0
		ta.SetWidth(72)
		ta.SetHeight(12)
		editors[i] = ta
	}
	if len(editors) > 0 {
		editors[0].Focus()
	}

	return &JournalModel{
		ctx:             ctx,
		user:            user,
		journal:         journal,
		saver:           saver,
		pageSubs:        pageSubs,
		usageSub:        usageSub,
		editors:         editors,
		saved:           make([]*models.Entry, len(pageSubs)),
		edited:          make([]bool, len(pageSubs)),
		unsaved:         make([]bool, len(pageSubs)),
		page:            models.FirstPage,
		copyToClipboard: clipboard.WriteAll,
		now:             time.Now,
	}
}

// Init implements [tea.Model]. Starts listening on every subscription and
// on save results, and loads the quota limit.
func (m *JournalModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink, m.cmdLoadUsage(), m.waitSaveResult()}
	for i, sub := range m.pageSubs {
		cmds = append(cmds, waitPage(models.FirstPage+i, sub))
	}
	if m.usageSub != nil {
		cmds = append(cmds, waitUsage(m.usageSub))
	}
	return tea.Batch(cmds...)
}

// Update implements [tea.Model].
func (m *JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageEntryMsg:
		m.applyEntry(msg.page, msg.entry)
		return m, waitPage(msg.page, m.pageSubs[msg.page-models.FirstPage])

	case usageMsg:
		m.usage.UsedBytes = msg.used
		return m, waitUsage(m.usageSub)

	case usageLoadedMsg:
		if msg.err != nil {
			m.warning = app.MessageFor(msg.err)
			return m, nil
		}
		// used bytes come from the usage subscription
		m.usage.LimitBytes = msg.usage.LimitBytes
		return m, nil

	case saveResultMsg:
		m.applySaveResult(workers.SaveResult(msg))
		return m, m.waitSaveResult()

	case flushedMsg:
		m.flushing = false
		for _, r := range msg.results {
			m.applySaveResult(r)
		}
		if slices.Contains(m.unsaved, true) {
			m.leaveAnyway = true
			return m, nil
		}
		m.logout = msg.logout
		return m, tea.Quit

	case copiedMsg:
		if msg.err != nil {
			m.warning = "Could not copy to the clipboard"
			return m, nil
		}
		m.status = fmt.Sprintf("Page %d copied to the clipboard", msg.page)
		return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c", key.Matches(msg, keys.esc):
			return m, m.leave(false)
		case key.Matches(msg, keys.logout):
			return m, m.leave(true)
		case key.Matches(msg, keys.nextPage):
			m.switchPage(m.page + 1)
			return m, nil
		case key.Matches(msg, keys.prevPage):
			m.switchPage(m.page - 1)
			return m, nil
		case key.Matches(msg, keys.share):
			return m, m.cmdShare()
		}
	}

	return m.updateEditor(msg)
}

// View implements [tea.Model].
func (m *JournalModel) View() string {
	var b strings.Builder

	b.WriteString(renderPageTabs(m.page))
	b.WriteString("    ")
	b.WriteString(m.now().Format("Monday, 2 January 2006"))
	b.WriteString("\n\n")
	b.WriteString(m.editors[m.index()].View())
	b.WriteString("\n\n")

	if entry := m.saved[m.index()]; entry != nil && !entry.UpdatedAt.IsZero() {
		b.WriteString(helpStyle.Render("Last saved " + humanize.RelTime(entry.UpdatedAt, m.now(), "ago", "from now")))
		b.WriteString("\n")
	}
	b.WriteString("Storage ")
	b.WriteString(renderGauge(m.usage))
	b.WriteString("\n")

	if m.warning != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.warning))
		b.WriteString("\n")
	}
	if m.leaveAnyway {
		b.WriteString(helpStyle.Render("Some pages are not saved. Press esc or ctrl+l again to leave anyway."))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	title := "JOURNAL · " + m.user.Username
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab/shift+tab: page │ ctrl+y: share │ ctrl+l: sign out │ esc: quit")
}

// Logout reports whether the user left the journal by signing out.
func (m *JournalModel) Logout() bool {
	return m.logout
}

func (m *JournalModel) index() int {
	return m.page - models.FirstPage
}

func (m *JournalModel) applyEntry(page int, entry *models.Entry) {
	i := page - models.FirstPage
	m.saved[i] = entry

	if m.edited[i] {
		// the stored text caught up with the editor
		if entry != nil && entry.Content == m.editors[i].Value() {
			m.edited[i] = false
		}
		return
	}

	content := ""
	if entry != nil {
		content = entry.Content
	}
	if m.editors[i].Value() != content {
		m.editors[i].SetValue(content)
	}
}

// applySaveResult shows the outcome of a save. Only a result for the text
// the editor holds now decides whether that page counts as unsaved.
func (m *JournalModel) applySaveResult(r workers.SaveResult) {
	if r.UserID != m.user.ID || !models.ValidPage(r.Page) {
		return
	}
	i := r.Page - models.FirstPage
	current := r.Content == m.editors[i].Value()

	if r.Err != nil {
		m.warning = fmt.Sprintf("Page %d: %s", r.Page, app.MessageFor(r.Err))
		if current {
			m.unsaved[i] = true
		}
		return
	}

	if current {
		m.unsaved[i] = false
	}
	if !slices.Contains(m.unsaved, true) {
		m.warning = ""
	}
}

// leave writes the queued pages and then quits, unless some page stays
// unsaved. A second request after such a warning quits at once.
func (m *JournalModel) leave(logout bool) tea.Cmd {
	if m.flushing {
		return nil
	}
	if m.leaveAnyway {
		m.logout = logout
		return tea.Quit
	}

	m.flushing = true
	ctx := m.ctx
	saver := m.saver
	return func() tea.Msg {
		return flushedMsg{results: saver.Flush(ctx), logout: logout}
	}
}

func (m *JournalModel) switchPage(page int) {
	if !models.ValidPage(page) {
		return
	}
	m.editors[m.index()].Blur()
	m.page = page
	m.editors[m.index()].Focus()
}

func (m *JournalModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	i := m.index()
	before := m.editors[i].Value()

	var cmd tea.Cmd
	m.editors[i], cmd = m.editors[i].Update(msg)

	if after := m.editors[i].Value(); after != before {
		m.edited[i] = true
		m.leaveAnyway = false
		m.saver.Submit(m.user.ID, m.page, after)
	}
	return m, cmd
}

func (m *JournalModel) cmdShare() tea.Cmd {
	page := m.page
	text := m.editors[m.index()].Value()
	copyToClipboard := m.copyToClipboard

	return func() tea.Msg {
		return copiedMsg{page: page, err: copyToClipboard(text)}
	}
}

func (m *JournalModel) cmdLoadUsage() tea.Cmd {
	ctx := m.ctx
	journal := m.journal
	userID := m.user.ID

	return func() tea.Msg {
		usage, err := journal.Usage(ctx, userID)
		return usageLoadedMsg{usage: usage, err: err}
	}
}

// waitSaveResult receives the next save result. The saver outlives the
// screen, so the wait ends with the screen's context and leaves later
// results to the next session.
func (m *JournalModel) waitSaveResult() tea.Cmd {
	ctx := m.ctx
	results := m.saver.Results()
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case r, ok := <-results:
			if !ok {
				return nil
			}
			return saveResultMsg(r)
		}
	}
}

func waitPage(page int, sub *live.Subscription[*models.Entry]) tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-sub.Updates()
		if !ok {
			return nil
		}
		return pageEntryMsg{page: page, entry: entry}
	}
}

func waitUsage(sub *live.Subscription[int64]) tea.Cmd {
	return func() tea.Msg {
		used, ok := <-sub.Updates()
		if !ok {
			return nil
		}
		return usageMsg{used: used}
	}
}
