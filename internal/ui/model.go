// Package ui is the terminal front end: a Bubble Tea model that routes key
// events into app.State transitions and renders the six views. All state
// mutation funnels through internal/app; this package owns only
// presentation concerns (cursors, inputs, viewport, spinner).
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/ilearncom/ilearncom/internal/ai"
	"github.com/ilearncom/ilearncom/internal/app"
	"github.com/ilearncom/ilearncom/internal/curriculum"
)

const aiCallTimeout = 90 * time.Second

// Options configures the UI model.
type Options struct {
	ChatModel  string
	ImageModel string
	ImageDir   string // where generated illustrations are written
}

// Model is the Bubble Tea model for the whole application.
type Model struct {
	state    *app.State
	store    *curriculum.Store
	provider ai.Provider
	opts     Options

	width  int
	height int

	sidebarOpen bool
	cursor      int // week cursor (curriculum) or question cursor (quiz)
	stepCursor  int // focused activity step in the lesson view

	viewport    viewport.Model
	chatInput   textinput.Model
	answerInput textinput.Model
	editing     *editTarget
	spin        spinner.Model

	imagePaths map[app.StepKey]string
	renderer   *glamour.TermRenderer
}

// editTarget identifies the short-answer question currently being typed.
type editTarget struct {
	week int
	q    curriculum.Question
}

// stepRef locates one activity step inside the selected week.
type stepRef struct {
	section int
	step    curriculum.ActivityStep
}

// chatResultMsg delivers the outcome of a tutor chat request.
type chatResultMsg struct {
	token int
	reply string
	err   error
}

// imageResultMsg delivers the outcome of one image generation.
type imageResultMsg struct {
	key  app.StepKey
	mime string
	data []byte
	path string
	err  error
}

// NewModel builds the initial UI model.
func NewModel(store *curriculum.Store, provider ai.Provider, opts Options) Model {
	if opts.ImageDir == "" {
		if cache, err := os.UserCacheDir(); err == nil {
			opts.ImageDir = filepath.Join(cache, "ilearncom")
		} else {
			opts.ImageDir = filepath.Join(os.TempDir(), "ilearncom")
		}
	}
	if err := os.MkdirAll(opts.ImageDir, 0o755); err != nil {
		slog.Warn("cannot create image dir", "dir", opts.ImageDir, "error", err)
	}

	chat := textinput.New()
	chat.Placeholder = "What do you want to know about computers? Type away..."
	chat.CharLimit = 500

	answer := textinput.New()
	answer.Placeholder = "Type your answer here..."
	answer.CharLimit = 200

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		state:       app.New(),
		store:       store,
		provider:    provider,
		opts:        opts,
		sidebarOpen: true,
		chatInput:   chat,
		answerInput: answer,
		spin:        sp,
		imagePaths:  make(map[app.StepKey]string),
	}
}

func (m Model) Init() tea.Cmd {
	return m.spin.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport = viewport.New(m.contentWidth(), m.height-6)
		if r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(m.contentWidth()),
		); err == nil {
			m.renderer = r
		}
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case chatResultMsg:
		m.state.CompleteAsk(msg.token, msg.reply, msg.err)
		m.chatInput.SetValue(m.state.Chat.Input)
		return m, nil

	case imageResultMsg:
		m.state.CompleteImage(msg.key, msg.mime, msg.data, msg.err)
		if _, ok := m.state.ImageAt(msg.key); ok && msg.path != "" {
			m.imagePaths[msg.key] = msg.path
		}
		if m.state.View == app.ViewLesson {
			m.refreshViewport()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text-entry contexts swallow almost every key.
	if m.state.View == app.ViewTutor && m.chatInput.Focused() {
		return m.handleChatKey(msg)
	}
	if m.editing != nil {
		return m.handleAnswerKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "ctrl+b":
		m.sidebarOpen = !m.sidebarOpen
		return m, nil
	case "1", "2", "3", "4", "5":
		// The quiz view owns digit keys for option selection.
		if m.state.View != app.ViewQuiz {
			return m.handleSidebarSelect(int(msg.String()[0] - '1')), nil
		}
	}

	switch m.state.View {
	case app.ViewHome:
		if msg.String() == "enter" {
			m.state.Go(app.ViewIntroduction)
		}
	case app.ViewIntroduction:
		if msg.String() == "enter" {
			m.state.Go(app.ViewCurriculum)
			m.cursor = 0
		}
	case app.ViewCurriculum:
		return m.handleCurriculumKey(msg)
	case app.ViewLesson:
		return m.handleLessonKey(msg)
	case app.ViewQuiz:
		return m.handleQuizKey(msg)
	case app.ViewTutor:
		if msg.String() == "enter" || msg.String() == "i" {
			m.chatInput.SetValue(m.state.Chat.Input)
			return m, m.chatInput.Focus()
		}
	}
	return m, nil
}

// sidebarEntries returns the sitemap entries shown in the sidebar. The
// lesson view is reached through the curriculum list, never directly.
func sidebarEntries() []curriculum.SitemapItem {
	var items []curriculum.SitemapItem
	for _, item := range curriculum.Sitemap() {
		if item.Path != string(app.ViewLesson) {
			items = append(items, item)
		}
	}
	return items
}

// handleSidebarSelect maps a sidebar index to its view. Selecting any
// destination other than lesson clears the selected week (app.Go).
func (m Model) handleSidebarSelect(idx int) Model {
	items := sidebarEntries()
	if idx < 0 || idx >= len(items) {
		return m
	}
	m.state.Go(app.View(items[idx].Path))
	m.cursor = 0
	m.stepCursor = 0
	m.editing = nil
	m.chatInput.Blur()
	m.refreshViewport()
	return m
}

func (m Model) handleCurriculumKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	weeks := m.store.Weeks()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(weeks)-1 {
			m.cursor++
		}
	case "enter":
		m.state.OpenLesson(weeks[m.cursor].Number)
		m.stepCursor = 0
		m.refreshViewport()
		m.viewport.GotoTop()
	}
	return m, nil
}

func (m Model) handleLessonKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state.Go(app.ViewCurriculum)
		return m, nil
	case "enter":
		m.state.StartQuiz()
		m.cursor = 0
		return m, nil
	case "n":
		steps := m.lessonSteps()
		if len(steps) > 0 {
			m.stepCursor = (m.stepCursor + 1) % len(steps)
			m.refreshViewport()
		}
		return m, nil
	case "i":
		return m.requestIllustration()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// requestIllustration starts image generation for the focused activity
// step. Idempotent: a key already loading or populated issues nothing.
func (m Model) requestIllustration() (tea.Model, tea.Cmd) {
	steps := m.lessonSteps()
	if len(steps) == 0 {
		return m, nil
	}
	ref := steps[m.stepCursor]
	key := app.StepKey{Week: m.state.SelectedWeek, Section: ref.section, Step: ref.step.Step}
	if !m.state.BeginImage(key) {
		return m, nil
	}
	m.refreshViewport()
	return m, m.imageCmd(key, ref.step)
}

func (m Model) handleQuizKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	questions := m.quizQuestions()
	if len(questions) == 0 {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		if m.state.SelectedWeek != 0 {
			m.state.OpenLesson(m.state.SelectedWeek)
			m.refreshViewport()
		} else {
			m.state.Go(app.ViewCurriculum)
		}
		return m, nil
	case "up", "k", "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j", "right", "l":
		if m.cursor < len(questions)-1 {
			m.cursor++
		}
		return m, nil
	case "e", "enter":
		pq := questions[m.cursor]
		if pq.Kind == curriculum.ShortAnswer && !m.state.Submitted {
			m.editing = &editTarget{week: pq.Week, q: pq.Question}
			if a, ok := m.state.Answer(pq.Week, pq.ID); ok {
				m.answerInput.SetValue(a.Text)
			} else {
				m.answerInput.SetValue("")
			}
			return m, m.answerInput.Focus()
		}
		return m, nil
	case "s":
		m.state.SubmitQuiz()
		return m, nil
	case "n":
		if m.state.Submitted {
			if m.state.AdvanceLesson(m.store) {
				m.viewport.GotoTop()
			}
			m.cursor = 0
			m.stepCursor = 0
			m.refreshViewport()
		}
		return m, nil
	}

	// Digit keys pick an option on choice questions.
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		pq := questions[m.cursor]
		if pq.Kind == curriculum.MultipleChoice || pq.Kind == curriculum.Scenario {
			idx := int(s[0] - '1')
			if err := m.state.RecordAnswer(pq.Week, pq.Question, app.ChoiceAnswer(idx)); err != nil {
				slog.Debug("answer rejected", "error", err)
			}
		}
	}
	return m, nil
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.chatInput.Blur()
		return m, nil
	case "enter":
		m.state.SetChatInput(m.chatInput.Value())
		prompt, token, ok := m.state.BeginAsk()
		if !ok {
			return m, nil
		}
		return m, m.askCmd(prompt, token)
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	m.state.SetChatInput(m.chatInput.Value())
	return m, cmd
}

func (m Model) handleAnswerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.editing = nil
		m.answerInput.Blur()
		return m, nil
	case "enter":
		t := m.editing
		if err := m.state.RecordAnswer(t.week, t.q, app.TextAnswer(m.answerInput.Value())); err != nil {
			slog.Debug("answer rejected", "error", err)
		}
		m.editing = nil
		m.answerInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.answerInput, cmd = m.answerInput.Update(msg)
	return m, cmd
}

// askCmd issues the tutor chat request off the UI loop; its completion
// comes back as a chatResultMsg carrying the generation token.
func (m Model) askCmd(prompt string, token int) tea.Cmd {
	provider := m.provider
	model := m.opts.ChatModel
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), aiCallTimeout)
		defer cancel()

		resp, err := provider.Complete(ctx, ai.CompletionRequest{
			System:   app.TutorPersona,
			Messages: []ai.Message{{Role: "user", Content: prompt}},
			Model:    model,
		})
		return chatResultMsg{token: token, reply: resp.Content, err: err}
	}
}

// imageCmd issues one image generation. Multiple of these may run at once
// for different step keys; each completion only touches its own key.
func (m Model) imageCmd(key app.StepKey, step curriculum.ActivityStep) tea.Cmd {
	provider := m.provider
	model := m.opts.ImageModel
	dir := m.opts.ImageDir
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), aiCallTimeout)
		defer cancel()

		res, err := provider.GenerateImage(ctx, ai.ImageRequest{
			Prompt:      app.ImagePrompt(step.Title, step.Desc),
			Model:       model,
			AspectRatio: "16:9",
		})
		if err != nil {
			return imageResultMsg{key: key, err: err}
		}

		path := filepath.Join(dir, fmt.Sprintf("week%d-s%d-step%d%s", key.Week, key.Section, key.Step, extFor(res.MIMEType)))
		if werr := os.WriteFile(path, res.Data, 0o644); werr != nil {
			slog.Warn("cannot save illustration", "path", path, "error", werr)
			path = ""
		}
		return imageResultMsg{key: key, mime: res.MIMEType, data: res.Data, path: path}
	}
}

func extFor(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}

// lessonSteps flattens the selected week's activity steps in display order.
func (m Model) lessonSteps() []stepRef {
	week, ok := m.store.Week(m.state.SelectedWeek)
	if !ok {
		return nil
	}
	var refs []stepRef
	for si, sec := range week.Sections {
		for _, st := range sec.Steps() {
			refs = append(refs, stepRef{section: si, step: st})
		}
	}
	return refs
}

// quizQuestions returns the questions for the current quiz context: the
// selected week's, or every week's pooled in order.
func (m Model) quizQuestions() []curriculum.PooledQuestion {
	if m.state.SelectedWeek != 0 {
		week, ok := m.store.Week(m.state.SelectedWeek)
		if !ok {
			return nil
		}
		pooled := make([]curriculum.PooledQuestion, 0, len(week.Quiz))
		for _, q := range week.Quiz {
			pooled = append(pooled, curriculum.PooledQuestion{Week: week.Number, Question: q})
		}
		return pooled
	}
	return m.store.AllQuestions()
}

func (m *Model) refreshViewport() {
	if m.state.View == app.ViewLesson {
		m.viewport.SetContent(m.renderLessonContent())
	}
}

func (m Model) contentWidth() int {
	w := m.width
	if m.sidebarOpen {
		w -= 26
	}
	if w < 20 {
		w = 80
	}
	return w - 6
}

// md renders markdown through glamour, falling back to the raw text before
// the first window size arrives.
func (m Model) md(s string) string {
	if m.renderer == nil {
		return s
	}
	out, err := m.renderer.Render(s)
	if err != nil {
		return s
	}
	return out
}
