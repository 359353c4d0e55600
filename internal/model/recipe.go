package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// Ingredient is one ingredient line of a stored recipe.
type Ingredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	Notes  string  `json:"notes,omitempty"`
}

// Instruction is one numbered step of a stored recipe.
type Instruction struct {
	StepNumber  int    `json:"step_number"`
	Instruction string `json:"instruction"`
	TimeMinutes int    `json:"time_minutes,omitempty"`
}

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// JSONBIngredients stores the ingredient list as a JSONB column
type JSONBIngredients []Ingredient

// Value implements the driver.Valuer interface
func (a JSONBIngredients) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBIngredients) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBIngredients{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// JSONBInstructions stores the instruction list as a JSONB column
type JSONBInstructions []Instruction

// Value implements the driver.Valuer interface
func (a JSONBInstructions) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBInstructions) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBInstructions{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is the canonical persisted recipe row. Rows are created by the
// generation pipeline after validation and are immutable except through the
// explicit content-edit paths.
type Recipe struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	DeletedAt    gorm.DeletedAt    `gorm:"index" json:"-"`
	Title        string            `gorm:"size:255;not null" json:"title"`
	Description  string            `gorm:"type:text" json:"description"`
	Emoji        string            `gorm:"size:16" json:"emoji"`
	MealType     string            `gorm:"size:20;not null;index" json:"meal_type"`
	PrepTime     int               `gorm:"not null" json:"prep_time"`
	CookTime     int               `gorm:"not null" json:"cook_time"`
	TotalTime    int               `gorm:"not null" json:"total_time"`
	Servings     int               `gorm:"not null" json:"servings"`
	Difficulty   string            `gorm:"size:10;not null" json:"difficulty"`
	Calories     float64           `gorm:"type:float" json:"calories"`
	Protein      float64           `gorm:"type:float" json:"protein"`
	Carbs        float64           `gorm:"type:float" json:"carbs"`
	Fats         float64           `gorm:"type:float" json:"fats"`
	Fiber        float64           `gorm:"type:float" json:"fiber"`
	Sugar        float64           `gorm:"type:float" json:"sugar"`
	Sodium       float64           `gorm:"type:float" json:"sodium"`
	Cholesterol  float64           `gorm:"type:float" json:"cholesterol"`
	Ingredients  JSONBIngredients  `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions JSONBInstructions `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	Equipment    JSONBStringArray  `gorm:"type:jsonb;not null;default:'[]'" json:"equipment"`
	Tags         JSONBStringArray  `gorm:"type:jsonb;not null;default:'[]'" json:"tags"`
	ImageURL     string            `gorm:"size:255" json:"image_url"`
	Embedding    pgvector.Vector   `gorm:"type:vector(3)" json:"-"`
	CreatedBy    uuid.UUID         `gorm:"type:uuid;not null;index" json:"created_by"`
}
