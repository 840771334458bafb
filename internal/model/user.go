package model

// Sex is the gender tag carried by a user. It only drives display color.
type Sex string

const (
	// SexMale marks a male user.
	SexMale Sex = "m"
	// SexFemale marks a female user.
	SexFemale Sex = "f"
)

// User owns one or more categories.
type User struct {
	Name     string `json:"name" yaml:"name"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	Sex      Sex    `json:"sex" yaml:"sex"`
	ID       int    `json:"id" yaml:"id"`
}
