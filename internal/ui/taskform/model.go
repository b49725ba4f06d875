package taskform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/inspion/internal/model"
	"github.com/nhle/inspion/internal/theme"
)

// SubmitMsg carries the filled-in form. The parent decides whether it
// creates or updates a task.
type SubmitMsg struct {
	Input model.TaskInput
}

// CancelMsg is dispatched when the user aborts the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title       string
	description string
	author      string
	comment     string
	status      model.Status
	startDate   string
	endDate     string
	importance  model.Level
	urgency     model.Level
	frequency   model.Frequency
	period      string
	completion  string
}

func newBindings() *formBindings {
	return &formBindings{
		status:     model.StatusInProgress,
		importance: model.LevelMedium,
		urgency:    model.LevelMedium,
		frequency:  model.FrequencyOneTime,
		completion: "0",
	}
}

// Model is the Bubble Tea model for the task create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	locale   model.Locale
	editMode bool
	err      error
	width    int
	height   int
}

// New creates a new task form model.
func New(locale model.Locale, width, height int) Model {
	return Model{
		fb:     newBindings(),
		locale: locale,
		width:  width,
		height: height,
	}
}

// StartCreate initializes the form for a new task.
func (m *Model) StartCreate() tea.Cmd {
	m.editMode = false
	m.err = nil
	m.fb = newBindings()
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form with an existing task's values.
func (m *Model) StartEdit(task model.Task) tea.Cmd {
	m.editMode = true
	m.err = nil
	m.fb = &formBindings{
		title:       task.Title,
		description: task.Description,
		author:      task.Author,
		comment:     task.Comment,
		status:      task.Status,
		startDate:   formatInput(task.StartDate),
		endDate:     formatInput(task.EndDate),
		importance:  task.Importance,
		urgency:     task.Urgency,
		frequency:   task.Frequency,
		period:      task.Period,
		completion:  strconv.Itoa(task.CompletionPercentage),
	}
	if !m.fb.status.Valid() {
		m.fb.status = model.StatusInProgress
	}
	if !m.fb.frequency.Valid() {
		m.fb.frequency = model.FrequencyOneTime
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// Resume reopens the form with the values the user already entered and
// shows err above it. Used when saving was rejected.
func (m *Model) Resume(err error) tea.Cmd {
	m.err = err
	m.form = m.buildForm()
	return m.form.Init()
}

// Input returns the current bindings as raw task input.
func (m Model) Input() model.TaskInput {
	fb := m.fb
	return model.TaskInput{
		Title:                strings.TrimSpace(fb.title),
		Description:          fb.description,
		Author:               strings.TrimSpace(fb.author),
		Comment:              fb.comment,
		Status:               fb.status,
		StartDate:            fb.startDate,
		EndDate:              fb.endDate,
		Importance:           fb.importance,
		Urgency:              fb.urgency,
		Frequency:            fb.frequency,
		Period:               strings.TrimSpace(fb.period),
		CompletionPercentage: fb.completion,
	}
}

// Update handles messages for the task form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		in := m.Input()
		return m, func() tea.Msg { return SubmitMsg{Input: in} }
	case huh.StateAborted:
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the task form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New Task"
	if m.editMode {
		titleText = "Edit Task"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render(titleText) + "\n"
	if m.err != nil {
		content += theme.ErrorStyle.Render(m.err.Error()) + "\n\n"
	}
	content += m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.form != nil {
		m.form = m.form.WithWidth(m.formWidth()).WithHeight(m.formHeight())
	}
}

func (m *Model) buildForm() *huh.Form {
	fb := m.fb
	loc := m.locale

	statusOpts := make([]huh.Option[model.Status], 0, len(model.Statuses()))
	for _, s := range model.Statuses() {
		statusOpts = append(statusOpts, huh.NewOption(model.StatusLabel(s, loc), s))
	}

	levelOpts := make([]huh.Option[model.Level], 0, len(model.Levels()))
	for _, l := range model.Levels() {
		levelOpts = append(levelOpts, huh.NewOption(model.LevelLabel(l, loc), l))
	}

	freqOpts := make([]huh.Option[model.Frequency], 0, len(model.Frequencies()))
	for _, f := range model.Frequencies() {
		freqOpts = append(freqOpts, huh.NewOption(model.FrequencyLabel(f, loc), f))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("What needs to be done?").
				Value(&fb.title).
				Validate(validateRequired("Title")),
			huh.NewText().
				Title("Description").
				Placeholder("Optional details...").
				Value(&fb.description),
			huh.NewInput().
				Title("Author").
				Value(&fb.author),
			huh.NewSelect[model.Status]().
				Title("Status").
				Options(statusOpts...).
				Value(&fb.status),
		).Title("Task"),

		huh.NewGroup(
			huh.NewInput().
				Title("Start").
				Placeholder("YYYY-MM-DD HH:MM (optional)").
				Value(&fb.startDate).
				Validate(ValidateDate),
			huh.NewInput().
				Title("End").
				Placeholder("YYYY-MM-DD HH:MM (optional)").
				Value(&fb.endDate).
				Validate(func(s string) error {
					return ValidateEnd(fb.startDate, s)
				}),
			huh.NewSelect[model.Frequency]().
				Title("Frequency").
				Options(freqOpts...).
				Value(&fb.frequency),
			huh.NewInput().
				Title("Period").
				Description("Repeat interval for periodic tasks").
				Value(&fb.period),
		).Title("Schedule"),

		huh.NewGroup(
			huh.NewSelect[model.Level]().
				Title("Importance").
				Options(levelOpts...).
				Value(&fb.importance),
			huh.NewSelect[model.Level]().
				Title("Urgency").
				Options(levelOpts...).
				Value(&fb.urgency),
			huh.NewNote().
				Title("Total priority").
				DescriptionFunc(func() string {
					return PriorityPreview(fb.importance, fb.urgency, loc)
				}, [2]*model.Level{&fb.importance, &fb.urgency}),
			huh.NewInput().
				Title("Completion %").
				Value(&fb.completion).
				Validate(ValidatePercentage),
			huh.NewText().
				Title("Comment").
				Value(&fb.comment),
		).Title("Progress"),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) formWidth() int {
	return min(max(m.width-4, 40), 100)
}

func (m Model) formHeight() int {
	return max(m.height-6, 10)
}

// PriorityPreview renders the total priority the selected levels produce.
func PriorityPreview(importance, urgency model.Level, locale model.Locale) string {
	total := model.CalculateTotalPriority(importance, urgency)
	label := model.PriorityLabel(model.PriorityStatus(total), locale)
	return theme.PriorityStyle(total).Render(fmt.Sprintf("%s (%d)", label, total))
}

// formatInput renders an optional date in the layout the inputs accept.
func formatInput(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format(model.DateTimeLayout)
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

// ValidateDate accepts an empty value or any date model.NormalizeDate
// understands.
func ValidateDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if model.NormalizeDate(s) == nil {
		return errors.New("invalid date, use YYYY-MM-DD or YYYY-MM-DD HH:MM")
	}
	return nil
}

// ValidateEnd checks the end date on its own and against the start date.
func ValidateEnd(start, end string) error {
	if err := ValidateDate(end); err != nil {
		return err
	}
	if err := model.ValidateSchedule(model.NormalizeDate(start), model.NormalizeDate(end)); err != nil {
		return errors.New("end must not be before start")
	}
	return nil
}

// ValidatePercentage accepts an empty value or a whole number in 0..100.
func ValidatePercentage(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 100 {
		return errors.New("enter a number from 0 to 100")
	}
	return nil
}
