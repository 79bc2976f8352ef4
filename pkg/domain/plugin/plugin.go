package plugin

import (
	"fmt"
	"regexp"
	"time"

	"github.com/NeuralTrust/InstallGate/pkg/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var codePattern = regexp.MustCompile(`^\w+$`)

type Plugin struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code        string    `json:"code" gorm:"uniqueIndex;not null"`
	Name        string    `json:"name"`
	Version     string    `json:"version"`
	Source      string    `json:"source"`
	Enabled     bool      `json:"enabled"`
	Initialized bool      `json:"initialized"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Plugin) TableName() string {
	return "plugins"
}

func (p *Plugin) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	return p.Validate()
}

// BeforeUpdate only checks the code. Rows seeded outside the installer may
// carry an empty name and must stay toggleable.
func (p *Plugin) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return ValidateCode(p.Code)
}

func (p *Plugin) Validate() error {
	if err := ValidateCode(p.Code); err != nil {
		return err
	}
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// ValidateCode reports whether code is a word-character plugin code.
func ValidateCode(code string) error {
	if !codePattern.MatchString(code) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidCode, code)
	}
	return nil
}
