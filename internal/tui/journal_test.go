// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-dabria/internal/app"
	"github.com/MKhiriev/go-dabria/internal/live"
	"github.com/MKhiriev/go-dabria/internal/logger"
	"github.com/MKhiriev/go-dabria/internal/mock"
	"github.com/MKhiriev/go-dabria/internal/service"
	"github.com/MKhiriev/go-dabria/internal/workers"
	"github.com/MKhiriev/go-dabria/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type submitted struct {
	userID  string
	page    int
	content string
}

type fakeSaver struct {
	mu      sync.Mutex
	calls   []submitted
	flushes int
	flushed []workers.SaveResult
	results chan workers.SaveResult
}

func newFakeSaver() *fakeSaver {
	return &fakeSaver{results: make(chan workers.SaveResult, 8)}
}

func (f *fakeSaver) Submit(userID string, page int, content string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, submitted{userID: userID, page: page, content: content})
}

func (f *fakeSaver) Flush(context.Context) []workers.SaveResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flushes++
	return f.flushed
}

func (f *fakeSaver) Results() <-chan workers.SaveResult {
	return f.results
}

func (f *fakeSaver) last() submitted {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return submitted{}
	}
	return f.calls[len(f.calls)-1]
}

var testUser = models.User{ID: "user-1", Username: "anna"}

// newTestJournal builds a journal screen whose page subscriptions deliver
// pages and whose usage subscription delivers used.
func newTestJournal(t *testing.T, journal service.JournalService, pages map[int]*models.Entry, used int64) (*JournalModel, *fakeSaver) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	saver := newFakeSaver()
	return newTestJournalSession(t, ctx, journal, saver, pages, used), saver
}

// newTestJournalSession builds a journal screen living as long as ctx and
// writing through saver.
func newTestJournalSession(
	t *testing.T,
	ctx context.Context,
	journal service.JournalService,
	saver PageSaver,
	pages map[int]*models.Entry,
	used int64,
) *JournalModel {
	t.Helper()

	hub := live.NewHub(logger.Nop())
	pageSubs := make([]*live.Subscription[*models.Entry], 0, models.LastPage)
	for p := models.FirstPage; p <= models.LastPage; p++ {
		entry := pages[p]
		pageSubs = append(pageSubs, live.Subscribe(ctx, hub, []string{"page"},
			func(context.Context) (*models.Entry, error) { return entry, nil }, nil))
	}
	usageSub := live.Subscribe(ctx, hub, []string{"usage"},
		func(context.Context) (int64, error) { return used, nil }, 0)

	return NewJournalModel(ctx, testUser, journal, saver, pageSubs, usageSub)
}

// leaveWith presses k and runs the flush it starts.
func leaveWith(t *testing.T, m *JournalModel, k tea.KeyType) tea.Cmd {
	t.Helper()
	_, cmd := press(m, k)
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, flushedMsg{}, msg)

	_, cmd = m.Update(msg)
	return cmd
}

func TestJournalModel_SubscriptionsFeedMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	entry := &models.Entry{ID: "e-2", UserID: testUser.ID, PageNumber: 2, Content: "second page"}
	m, _ := newTestJournal(t, mock.NewMockJournalService(ctrl), map[int]*models.Entry{2: entry}, 42)

	msg := waitPage(2, m.pageSubs[1])()
	assert.Equal(t, pageEntryMsg{page: 2, entry: entry}, msg)

	msg = waitUsage(m.usageSub)()
	assert.Equal(t, usageMsg{used: 42}, msg)

	// closed subscriptions end the wait with no message
	require.NoError(t, m.pageSubs[0].Close())
	<-m.pageSubs[0].Done()
	for range m.pageSubs[0].Updates() {
	}
	assert.Nil(t, waitPage(1, m.pageSubs[0])())
}

func TestJournalModel_EntrySeedsEditor(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, saver := newTestJournal(t, mock.NewMockJournalService(ctrl), nil, 0)

	_, cmd := m.Update(pageEntryMsg{page: 1, entry: &models.Entry{Content: "hello"}})
	assert.NotNil(t, cmd)
	assert.Equal(t, "hello", m.editors[0].Value())

	// a page without an entry shows an empty editor
	m.Update(pageEntryMsg{page: 1, entry: nil})
	assert.Empty(t, m.editors[0].Value())

	assert.Empty(t, saver.calls, "seeding an editor is not an edit")
}

func TestJournalModel_TypingSubmitsPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, saver := newTestJournal(t, mock.NewMockJournalService(ctrl), nil, 0)

	typeText(m, "dear diary")

	assert.Equal(t, submitted{userID: testUser.ID, page: 1, content: "dear diary"}, saver.last())
	assert.True(t, m.edited[0])
}

func TestJournalModel_EditedPageIsNotOverwritten(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := newTestJournal(t, mock.NewMockJournalService(ctrl), nil, 0)

	typeText(m, "newer text")

	// an older stored version arrives while the newer one is still pending
	m.Update(pageEntryMsg{page: 1, entry: &models.Entry{Content: "older"}})
	assert.Equal(t, "newer text", m.editors[0].Value())
	assert.True(t, m.edited[0])

	// once the stored text catches up the editor follows the store again
	m.Update(pageEntryMsg{page: 1, entry: &models.Entry{Content: "newer text"}})
	assert.False(t, m.edited[0])

	m.Update(pageEntryMsg{page: 1, entry: &models.Entry{Content: "from elsewhere"}})
	assert.Equal(t, "from elsewhere", m.editors[0].Value())
}

func TestJournalModel_QuotaRejectionKeepsText(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := newTestJournal(t, mock.NewMockJournalService(ctrl), nil, 0)

	typeText(m, "too much")

	_, cmd := m.Update(saveResultMsg{
		UserID:  testUser.ID,
		Page:    1,
		Content: "too much",
		Err:     service.ErrQuotaExceeded,
	})
	assert.NotNil(t, cmd)
	assert.Equal(t, "too much", m.editors[0].Value())
	assert.Equal(t, "Page 1: "+app.MsgQuotaExceeded, m.warning)

	// a later successful save of the same text clears the warning
	m.Update(saveResultMsg{UserID: testUser.ID, Page: 1, Content: "too much"})
	assert.Empty(t, m.warning)
	assert.False(t, m.unsaved[0])
}

func TestJournalModel_StaleSuccessKeepsPageUnsaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := newTestJournal(t, mock.NewMockJournalService(ctrl), nil, 0)

	typeText(m, "too much")
	m.Update(saveResultMsg{UserID: testUser.ID, Page: 1, Content: "too much", Err: service.ErrQuotaExceeded})

	// an earlier, shorter version was saved before the rejection
	m.Update(saveResultMsg{UserID: testUser.ID, Page: 1, Content: "too"})
	assert.True(t, m.unsaved[0])
	assert.Equal(t, "Page 1: "+app.MsgQuotaExceeded, m.warning)
}

func TestJournalModel_IgnoresOtherUsersResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := newTestJournal(t, mock.NewMockJournalService(ctrl), nil, 0)

	m.Update(saveResultMsg{UserID: "someone-else", Page: 1, Err: service.ErrQuotaExceeded})
	assert.Empty(t, m.warning)
}

func TestJournalModel_SaveResultCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, saver := newTestJournal(t, mock.NewMockJournalService(ctrl), nil, 0)

	result := workers.SaveResult{UserID: testUser.ID, Page: 3, Content: "x"}
	saver.results <- result

	assert.Equal(t, saveResultMsg(result), m.waitSaveResult()())

	close(saver.results)
	assert.Nil(t, m.waitSaveResult()())
}

func TestJournalModel_SaveResultWaitEndsWithScreen(t *testing.T) {
	ctrl := gomock.NewController(t)
	saver := newFakeSaver()
	ctx, cancel := context.WithCancel(context.Background())
	m := newTestJournalSession(t, ctx, mock.NewMockJournalService(ctrl), saver, nil, 0)

	cancel()
	assert.Nil(t, m.waitSaveResult()())

	// the result is left for whoever waits next
	saver.results <- workers.SaveResult{UserID: testUser.ID, Page: 1}
	assert.Len(t, saver.results, 1)
}

func TestJournalModel_PageNavigation(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, saver := newTestJournal(t, mock.NewMockJournalService(ctrl), nil, 0)

	press(m, tea.KeyShiftTab)
	assert.Equal(t, 1, m.page, "no page before the first one")

	press(m, tea.KeyTab)
	assert.Equal(t, 2, m.page)
	assert.True(t, m.editors[1].Focused())
	assert.False(t, m.editors[0].Focused())

	typeText(m, "page two")
	assert.Equal(t, submitted{userID: testUser.ID, page: 2, content: "page two"}, saver.last())

	press(m, tea.KeyTab)
	press(m, tea.KeyTab)
	assert.Equal(t, 3, m.page, "no page after the last one")

	press(m, tea.KeyShiftTab)
	assert.Equal(t, 2, m.page)
}

func TestJournalModel_Share(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := newTestJournal(t, mock.NewMockJournalService(ctrl), nil, 0)
	m.Update(pageEntryMsg{page: 1, entry: &models.Entry{Content: "share me"}})

	var copied string
	m.copyToClipboard = func(text string) error {
		copied = text
		return nil
	}

	_, cmd := press(m, tea.KeyCtrlY)
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, copiedMsg{page: 1}, msg)
	assert.Equal(t, "share me", copied)

	_, cmd = m.Update(msg)
	assert.NotNil(t, cmd)
	assert.Equal(t, "Page 1 copied to the clipboard", m.status)

	m.Update(clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestJournalModel_ShareFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := newTestJournal(t, mock.NewMockJournalService(ctrl), nil, 0)
	m.copyToClipboard = func(string) error { return errors.New("no clipboard") }

	_, cmd := press(m, tea.KeyCtrlY)
	m.Update(cmd())

	assert.Equal(t, "Could not copy to the clipboard", m.warning)
	assert.Empty(t, m.status)
}

func TestJournalModel_Usage(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := mock.NewMockJournalService(ctrl)
	m, _ := newTestJournal(t, journal, nil, 0)

	journal.EXPECT().
		Usage(gomock.Any(), testUser.ID).
		Return(models.Usage{UsedBytes: 1, LimitBytes: 4096}, nil)

	m.Update(usageMsg{used: 1024})
	m.Update(m.cmdLoadUsage()())

	// the loaded usage is older than the subscription value
	assert.Equal(t, models.Usage{UsedBytes: 1024, LimitBytes: 4096}, m.usage)
	assert.Contains(t, m.View(), "25.0%")
}

func TestJournalModel_UsageLoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := newTestJournal(t, mock.NewMockJournalService(ctrl), nil, 0)

	m.Update(usageLoadedMsg{err: service.ErrStorageUnavailable})
	assert.Equal(t, app.MsgStorageUnavailable, m.warning)
}

func TestJournalModel_ViewShowsDateAndLastSaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := newTestJournal(t, mock.NewMockJournalService(ctrl), nil, 0)

	now := time.Date(2026, time.October, 18, 9, 30, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	m.Update(pageEntryMsg{page: 1, entry: &models.Entry{Content: "x", UpdatedAt: now.Add(-3 * time.Minute)}})

	view := m.View()
	assert.Contains(t, view, "Sunday, 18 October 2026")
	assert.Contains(t, view, "Last saved 3 minutes ago")
	assert.Contains(t, view, testUser.Username)
}

func TestJournalModel_LeavingFlushesPages(t *testing.T) {
	tests := []struct {
		name       string
		key        tea.KeyType
		wantLogout bool
	}{
		{name: "sign out", key: tea.KeyCtrlL, wantLogout: true},
		{name: "esc", key: tea.KeyEsc},
		{name: "ctrl+c", key: tea.KeyCtrlC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m, saver := newTestJournal(t, mock.NewMockJournalService(ctrl), nil, 0)

			typeText(m, "last words")
			saver.flushed = []workers.SaveResult{{UserID: testUser.ID, Page: 1, Content: "last words"}}

			cmd := leaveWith(t, m, tt.key)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Equal(t, 1, saver.flushes)
			assert.Equal(t, tt.wantLogout, m.Logout())
		})
	}
}

func TestJournalModel_LeavingWhileFlushingIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := newTestJournal(t, mock.NewMockJournalService(ctrl), nil, 0)

	_, first := press(m, tea.KeyEsc)
	require.NotNil(t, first)

	_, second := press(m, tea.KeyCtrlL)
	assert.Nil(t, second)
}

func TestJournalModel_RejectedFlushKeepsScreenOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, saver := newTestJournal(t, mock.NewMockJournalService(ctrl), nil, 0)

	typeText(m, "way too much")
	saver.flushed = []workers.SaveResult{{
		UserID:  testUser.ID,
		Page:    1,
		Content: "way too much",
		Err:     service.ErrQuotaExceeded,
	}}

	cmd := leaveWith(t, m, tea.KeyCtrlL)
	assert.Nil(t, cmd, "the screen stays open")
	assert.False(t, m.Logout())
	assert.Equal(t, "way too much", m.editors[0].Value())
	assert.Equal(t, "Page 1: "+app.MsgQuotaExceeded, m.warning)
	assert.Contains(t, m.View(), "again to leave anyway")

	// asking again leaves without another flush
	_, cmd = press(m, tea.KeyCtrlL)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Logout())
	assert.Equal(t, 1, saver.flushes)
}

func TestJournalModel_EarlierRejectionBlocksLeaving(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _ := newTestJournal(t, mock.NewMockJournalService(ctrl), nil, 0)

	// the autosave was rejected, so nothing of page 1 is queued any more
	typeText(m, "rejected text")
	m.Update(saveResultMsg{UserID: testUser.ID, Page: 1, Content: "rejected text", Err: service.ErrQuotaExceeded})

	cmd := leaveWith(t, m, tea.KeyEsc)
	assert.Nil(t, cmd)
	assert.True(t, m.leaveAnyway)

	// editing again withdraws the permission to leave without saving
	typeText(m, "!")
	assert.False(t, m.leaveAnyway)
	_, cmd = press(m, tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.IsType(t, flushedMsg{}, cmd())
}

func TestJournalModel_SaveResultsStayWithTheirSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := mock.NewMockJournalService(ctrl)
	saver := workers.NewAutosaver(journal, time.Hour, logger.Nop())

	// first session: its wait is pending when the user signs out
	ctx1, cancel1 := context.WithCancel(context.Background())
	first := newTestJournalSession(t, ctx1, journal, saver, nil, 0)
	leftover := make(chan tea.Msg, 1)
	go func() { leftover <- first.waitSaveResult()() }()
	cancel1()

	select {
	case msg := <-leftover:
		assert.Nil(t, msg)
	case <-time.After(time.Second):
		t.Fatal("the first session still waits for save results")
	}

	// second session: its rejection reaches its own screen
	ctx2, cancel2 := context.WithCancel(context.Background())
	t.Cleanup(cancel2)
	second := newTestJournalSession(t, ctx2, journal, saver, nil, 0)

	journal.EXPECT().
		SaveContent(gomock.Any(), testUser.ID, 2, "too much").
		Return(models.Entry{}, service.ErrQuotaExceeded)

	saver.Submit(testUser.ID, 2, "too much")
	saver.Flush(context.Background())

	msg := second.waitSaveResult()()
	require.IsType(t, saveResultMsg{}, msg)
	second.Update(msg)
	assert.Equal(t, "Page 2: "+app.MsgQuotaExceeded, second.warning)
}

func TestRenderGauge(t *testing.T) {
	tests := []struct {
		name  string
		usage models.Usage
		want  []string
	}{
		{
			name:  "half",
			usage: models.Usage{UsedBytes: 256 << 20, LimitBytes: 512 << 20},
			want:  []string{"50.0%", "256 MiB", "512 MiB"},
		},
		{
			name:  "empty",
			usage: models.Usage{UsedBytes: 0, LimitBytes: 512 << 20},
			want:  []string{"0.0%", "0 B"},
		},
		{
			name:  "full",
			usage: models.Usage{UsedBytes: 512 << 20, LimitBytes: 512 << 20},
			want:  []string{"100.0%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderGauge(tt.usage)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
		})
	}
}
