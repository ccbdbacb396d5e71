package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ilearncom/ilearncom/internal/app"
	"github.com/ilearncom/ilearncom/internal/curriculum"
)

func (m Model) View() string {
	var main string
	switch m.state.View {
	case app.ViewHome:
		main = m.renderHome()
	case app.ViewIntroduction:
		main = m.renderIntroduction()
	case app.ViewCurriculum:
		main = m.renderCurriculum()
	case app.ViewLesson:
		main = m.renderLesson()
	case app.ViewQuiz:
		main = m.renderQuiz()
	case app.ViewTutor:
		main = m.renderTutor()
	}

	body := mainStyle.Width(m.contentWidth() + 4).Render(main)
	if m.sidebarOpen {
		return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), body)
	}
	return body
}

// renderSidebar draws the navigation rail. The lesson view keeps the
// Lessons entry highlighted since it is reached through it.
func (m Model) renderSidebar() string {
	var b strings.Builder
	b.WriteString(appTitleStyle.Render("ILearnCom"))
	b.WriteString("\n\n")

	active := m.state.View
	if active == app.ViewLesson {
		active = app.ViewCurriculum
	}

	for i, item := range sidebarEntries() {
		label := fmt.Sprintf("%d. %s", i+1, item.Name)
		if app.View(item.Path) == active {
			b.WriteString(sidebarActiveStyle.Render(label))
		} else {
			b.WriteString(sidebarItemStyle.Render(label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("ctrl+b sidebar\nq quit"))
	return sidebarStyle.Height(m.height - 2).Render(b.String())
}

func (m Model) renderHome() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Hey friend! Let's learn computers 🚀"))
	b.WriteString("\n\n")
	b.WriteString("We turn intimidating tech topics into easy wins — like cramming\n")
	b.WriteString("with your best friend from the front row.\n\n")

	cards := []struct{ title, desc string }{
		{"Focused lessons", fmt.Sprintf("%d weeks covering all the computer fundamentals", len(m.store.Weeks()))},
		{"Check yourself", "Quizzes with instant feedback and full explanations"},
		{"Ask the AI", "Your AI study buddy is around 24/7"},
	}
	for _, c := range cards {
		b.WriteString(cardStyle.Render(headingStyle.Render(c.title) + "\n" + subtleStyle.Render(c.desc)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("enter read the foreword · 1-5 navigate"))
	return b.String()
}

func (m Model) renderIntroduction() string {
	const foreword = `# Foreword

*"Computers aren't hard. You just have to learn how to talk to them."*

Welcome! In a world where everything runs on technology, computer
knowledge isn't just "a subject" — it's a tool that moves your whole
career forward, whether you're heading into electrical work, mechanics,
accounting, or marketing.

This course was built around three words: **simple, honest, practical.**
We cut the headache-inducing jargon and replaced it with explanations
that read like a friend tutoring a friend, so you truly understand how
hardware, operating systems, networks, and digital safety work.

- Concise content, easy to follow
- AI-generated illustrations on demand
- A question-and-answer AI tutor
- Instant quiz feedback

We hope these lessons become the foundation that lets you use a computer
with confidence — and fix the basics yourself, like a pro.`

	return m.md(foreword) + "\n" + footerStyle.Render("enter start the first lesson · 1-5 navigate")
}

func (m Model) renderCurriculum() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Computer Lessons"))
	b.WriteString("\n\n")

	for i, w := range m.store.Weeks() {
		chips := w.Subtopics
		extra := ""
		if len(chips) > 3 {
			extra = fmt.Sprintf("  +%d more", len(chips)-3)
			chips = chips[:3]
		}
		card := fmt.Sprintf("%s %s\n%s\n%s%s",
			headingStyle.Render(fmt.Sprintf("Week %d", w.Number)),
			w.Title,
			subtleStyle.Render(w.ShortDesc),
			subtleStyle.Render(strings.Join(chips, " · ")),
			subtleStyle.Render(extra),
		)
		style := cardStyle
		if i == m.cursor {
			style = cardFocusStyle
		}
		b.WriteString(style.Width(m.contentWidth()).Render(card))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render("↑/↓ choose · enter open lesson"))
	return b.String()
}

func (m Model) renderLesson() string {
	week, ok := m.store.Week(m.state.SelectedWeek)
	if !ok {
		return subtleStyle.Render("No lesson selected.")
	}

	header := fmt.Sprintf("%s  %s",
		badgeStyle.Background(lipgloss.Color("33")).Foreground(lipgloss.Color("15")).Render(fmt.Sprintf("Week %d", week.Number)),
		headingStyle.Render(week.Title),
	)
	footer := footerStyle.Render("↑/↓ scroll · n next step · i illustrate step · enter take quiz · esc back")
	return header + "\n" + m.viewport.View() + "\n" + footer
}

// renderLessonContent builds the scrollable lesson body as markdown.
func (m Model) renderLessonContent() string {
	week, ok := m.store.Week(m.state.SelectedWeek)
	if !ok {
		return ""
	}
	steps := m.lessonSteps()

	var b strings.Builder
	b.WriteString(week.Introduction)
	b.WriteString("\n\n")

	flat := 0
	for _, sec := range week.Sections {
		b.WriteString("## " + sec.Title + "\n\n")
		if sec.Kind == curriculum.SectionText {
			b.WriteString(sec.Content)
			b.WriteString("\n\n")
			continue
		}
		for _, st := range sec.Steps() {
			marker := "  "
			if len(steps) > 0 && flat == m.stepCursor {
				marker = "▶ "
			}
			b.WriteString(fmt.Sprintf("%s**Step %d — %s**\n\n", marker, st.Step, st.Title))
			b.WriteString("  " + st.Desc + "\n\n")
			b.WriteString("  " + m.stepImageLine(flat) + "\n\n")
			flat++
		}
	}

	b.WriteString("## What we learned\n\n")
	for _, t := range week.Takeaways {
		b.WriteString("- " + t + "\n")
	}
	b.WriteString("\n*" + week.Assessment + "*\n")

	return m.md(b.String())
}

// stepImageLine shows one step's illustration status: absent, drawing, or
// saved to disk.
func (m Model) stepImageLine(flat int) string {
	steps := m.lessonSteps()
	if flat >= len(steps) {
		return ""
	}
	ref := steps[flat]
	key := app.StepKey{Week: m.state.SelectedWeek, Section: ref.section, Step: ref.step.Step}

	entry, ok := m.state.ImageAt(key)
	if !ok {
		return "_press i to generate an illustration_"
	}
	if entry.Status == app.ImageLoading {
		return "_drawing your illustration..._"
	}
	if path, ok := m.imagePaths[key]; ok {
		return fmt.Sprintf("_illustration saved to %s_", path)
	}
	return fmt.Sprintf("_illustration ready (%d KB, %s)_", len(entry.Data)/1024, entry.MIMEType)
}

func (m Model) renderQuiz() string {
	questions := m.quizQuestions()
	if len(questions) == 0 {
		return subtleStyle.Render("No questions available.")
	}
	if m.cursor >= len(questions) {
		m.cursor = len(questions) - 1
	}
	pq := questions[m.cursor]

	var b strings.Builder
	title := "Question Bank"
	if m.state.SelectedWeek != 0 {
		if w, ok := m.store.Week(m.state.SelectedWeek); ok {
			title = fmt.Sprintf("Week %d Quiz: %s", w.Number, w.Title)
		}
	}
	b.WriteString(headingStyle.Render(title))
	b.WriteString("\n\n")

	provenance := ""
	if m.state.SelectedWeek == 0 {
		provenance = subtleStyle.Render(fmt.Sprintf("  (week %d)", pq.Week))
	}
	b.WriteString(fmt.Sprintf("%s %s%s\n\n",
		subtleStyle.Render(fmt.Sprintf("Question %d of %d", m.cursor+1, len(questions))),
		difficultyBadge(pq.Difficulty),
		provenance,
	))
	b.WriteString(headingStyle.Render(pq.Text))
	b.WriteString("\n\n")

	switch pq.Kind {
	case curriculum.MultipleChoice, curriculum.Scenario:
		b.WriteString(m.renderOptions(pq))
	case curriculum.ShortAnswer:
		b.WriteString(m.renderShortAnswer(pq))
	case curriculum.Matching:
		b.WriteString(m.renderMatching(pq))
	}

	if m.state.Submitted {
		b.WriteString("\n")
		b.WriteString(explanationStyle.Width(m.contentWidth()).Render("Answer key: " + pq.Explanation))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.state.Submitted {
		b.WriteString(footerStyle.Render("↑/↓ questions · n next lesson · esc back"))
	} else {
		b.WriteString(footerStyle.Render("↑/↓ questions · 1-9 pick option · enter type answer · s submit · esc back"))
	}
	return b.String()
}

func (m Model) renderOptions(pq curriculum.PooledQuestion) string {
	answer, answered := m.state.Answer(pq.Week, pq.ID)

	var b strings.Builder
	for i, opt := range pq.Options {
		selected := answered && answer.Kind == app.AnswerChoice && answer.Choice == i
		line := fmt.Sprintf("%d) %s", i+1, opt)

		switch {
		case m.state.Submitted && i == pq.CorrectIndex:
			b.WriteString(correctStyle.Render("✓ " + line))
		case m.state.Submitted && selected:
			b.WriteString(incorrectStyle.Render("✗ " + line))
		case selected:
			b.WriteString(optionSelectedStyle.Render("● " + line))
		default:
			b.WriteString(optionStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderShortAnswer(pq curriculum.PooledQuestion) string {
	if m.editing != nil && m.editing.week == pq.Week && m.editing.q.ID == pq.ID {
		return m.answerInput.View() + "\n" + footerStyle.Render("enter save · esc cancel") + "\n"
	}

	answer, answered := m.state.Answer(pq.Week, pq.ID)
	var b strings.Builder
	if answered {
		b.WriteString("Your answer: " + headingStyle.Render(answer.Text) + "\n")
	} else {
		b.WriteString(subtleStyle.Render("No answer yet — press enter to type one.") + "\n")
	}

	if m.state.Submitted {
		if m.state.Grade(pq.Week, pq.Question) == app.Correct {
			b.WriteString(correctStyle.Render("✓ Correct") + "\n")
		} else {
			b.WriteString(incorrectStyle.Render("✗ Correct answer: "+pq.CorrectText) + "\n")
		}
	}
	return b.String()
}

func (m Model) renderMatching(pq curriculum.PooledQuestion) string {
	var b strings.Builder
	b.WriteString(subtleStyle.Render("Matching is shown as paired answers (display only).") + "\n")
	for _, p := range pq.Pairs {
		b.WriteString(fmt.Sprintf("  %s → %s\n", headingStyle.Render(p.Left), p.Right))
	}
	return b.String()
}

func (m Model) renderTutor() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Your AI Study Buddy"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("Stuck on anything computer-related? Just ask — I'll break it down."))
	b.WriteString("\n\n")

	switch {
	case m.state.Chat.InFlight:
		b.WriteString(m.spin.View() + " thinking...\n\n")
	case m.state.Chat.Reply != "":
		b.WriteString(tutorReplyStyle.Width(m.contentWidth()).Render(m.state.Chat.Reply))
		b.WriteString("\n\n")
	default:
		b.WriteString(subtleStyle.Render("No messages yet. Type a question below!"))
		b.WriteString("\n\n")
	}

	b.WriteString(m.chatInput.View())
	b.WriteString("\n")
	if m.chatInput.Focused() {
		b.WriteString(footerStyle.Render("enter ask · esc leave the input"))
	} else {
		b.WriteString(footerStyle.Render("enter start typing · 1-5 navigate"))
	}
	return b.String()
}
