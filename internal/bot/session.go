package bot

import (
	"time"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
	"github.com/mantelbuddy/mantelbuddy-api/internal/scoring"
)

// Session is the in-memory state of one conversation, keyed by phone number.
// It lives only in the session store: a restart drops in-progress
// conversations and the next message starts fresh.
type Session struct {
	Phone       string
	CurrentStep Step

	// Balanstest progress.
	Questions     []entities.Question
	QuestionIndex int
	Answers       []scoring.AnswerInput

	// Care-task collection. TaskIndex points into SelectedTasks so the
	// hours/difficulty loop resumes at the right task after each reply.
	Tasks          []entities.CareTask
	SelectedTasks  []string
	TaskIndex      int
	TaskHours      map[string]float64
	TaskDifficulty map[string]string

	// Onboarding scratch space.
	OwnPostcode     string
	OwnHouse        string
	OwnStreet       string
	OwnCity         string
	OwnMunicipality string
	CareName        string
	CareRelation    string
	CarePostcode    string
	CareHouse       string
	CareCity        string

	UpdatedAt time.Time
}

func newSession(phone string) *Session {
	return &Session{
		Phone:          phone,
		CurrentStep:    StepMenu,
		TaskHours:      make(map[string]float64),
		TaskDifficulty: make(map[string]string),
		UpdatedAt:      time.Now(),
	}
}

// currentTask returns the task id the hours/difficulty loop is working on.
func (s *Session) currentTask() (string, bool) {
	if s.TaskIndex < 0 || s.TaskIndex >= len(s.SelectedTasks) {
		return "", false
	}
	return s.SelectedTasks[s.TaskIndex], true
}

func (s *Session) taskName(id string) string {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t.Name
		}
	}
	return id
}

// resetFlow clears all flow progress but keeps the session alive on the menu.
func (s *Session) resetFlow() {
	s.CurrentStep = StepMenu
	s.Questions = nil
	s.QuestionIndex = 0
	s.Answers = nil
	s.Tasks = nil
	s.SelectedTasks = nil
	s.TaskIndex = 0
	s.TaskHours = make(map[string]float64)
	s.TaskDifficulty = make(map[string]string)
	s.OwnPostcode = ""
	s.OwnHouse = ""
	s.OwnStreet = ""
	s.OwnCity = ""
	s.OwnMunicipality = ""
	s.CareName = ""
	s.CareRelation = ""
	s.CarePostcode = ""
	s.CareHouse = ""
	s.CareCity = ""
}
