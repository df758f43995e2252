package catalog

// CourseCategory is a course track shown on the marketing site. Slug is the
// public lookup key.
type CourseCategory struct {
	ID         string   `bson:"_id,omitempty" json:"-"`
	Slug       string   `bson:"slug" json:"slug" validate:"required,slug"`
	Title      string   `bson:"title" json:"title" validate:"required"`
	Blurb      string   `bson:"blurb" json:"blurb" validate:"required"`
	Highlights []string `bson:"highlights,omitempty" json:"highlights,omitempty" validate:"omitempty,dive,required"`
	Color      string   `bson:"color,omitempty" json:"color,omitempty" validate:"omitempty,hexcolor6"`
	Accent     string   `bson:"accent,omitempty" json:"accent,omitempty" validate:"omitempty,hexcolor6"`
}

type StaffMember struct {
	ID      string            `bson:"_id,omitempty" json:"-"`
	Name    string            `bson:"name" json:"name" validate:"required"`
	Role    string            `bson:"role" json:"role" validate:"required"`
	Bio     string            `bson:"bio,omitempty" json:"bio,omitempty"`
	Avatar  string            `bson:"avatar,omitempty" json:"avatar,omitempty" validate:"omitempty,url"`
	Socials map[string]string `bson:"socials,omitempty" json:"socials,omitempty" validate:"omitempty,dive,keys,required,endkeys,url"`
}

// SeedReport counts the records written by a seeding pass.
type SeedReport struct {
	Categories int `json:"categories"`
	Staff      int `json:"staff"`
}
