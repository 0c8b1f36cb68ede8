package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type QuestionType string

const (
	QuestionTypeText           QuestionType = "TEXT"
	QuestionTypeTextarea       QuestionType = "TEXTAREA"
	QuestionTypeSingleChoice   QuestionType = "SINGLE_CHOICE"
	QuestionTypeMultipleChoice QuestionType = "MULTIPLE_CHOICE"
)

type ApplicationQuestion struct {
	ID        string       `json:"id"`
	Prompt    string       `json:"prompt"`
	Type      QuestionType `json:"type"`
	Required  bool         `json:"required"`
	Options   []string     `json:"options,omitempty"`
	MaxLength int32        `json:"max_length,omitempty"`
	Order     int32        `json:"order"`
}

func TextQuestion(prompt string, required bool, order int32) ApplicationQuestion {
	return ApplicationQuestion{
		ID:        uuid.NewString(),
		Prompt:    prompt,
		Type:      QuestionTypeText,
		Required:  required,
		MaxLength: 500,
		Order:     order,
	}
}

func ChoiceQuestion(prompt string, options []string, required bool, order int32) ApplicationQuestion {
	return ApplicationQuestion{
		ID:       uuid.NewString(),
		Prompt:   prompt,
		Type:     QuestionTypeSingleChoice,
		Required: required,
		Options:  options,
		Order:    order,
	}
}

// ApplicationForm is the study-scoped question list applicants answer. A study
// has at most one active form at a time; creating a new form deactivates the
// previous one.
type ApplicationForm struct {
	ID          string                `json:"id"`
	StudyID     string                `json:"study_id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Questions   []ApplicationQuestion `json:"questions"`
	Active      bool                  `json:"active"`
	CreatedBy   string                `json:"created_by"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

func NewApplicationForm(studyID, title, description, createdBy string, questions []ApplicationQuestion) (*ApplicationForm, error) {
	if studyID == "" {
		return nil, fmt.Errorf("%w: study id is required", ErrValidation)
	}
	for _, q := range questions {
		if q.Prompt == "" {
			return nil, fmt.Errorf("%w: question prompt is required", ErrValidation)
		}
	}
	now := time.Now()
	return &ApplicationForm{
		ID:          uuid.NewString(),
		StudyID:     studyID,
		Title:       title,
		Description: description,
		Questions:   questions,
		Active:      true,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (f *ApplicationForm) Deactivate() {
	f.Active = false
	f.UpdatedAt = time.Now()
}

func (f *ApplicationForm) UpdateQuestions(questions []ApplicationQuestion) {
	f.Questions = questions
	f.UpdatedAt = time.Now()
}
