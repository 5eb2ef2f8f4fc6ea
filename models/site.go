package models

// Intro, About and Theme are singleton documents: each collection holds at
// most one, keyed by SingletonKey and written with upsert semantics.

const SingletonKey = "singleton"

type Intro struct {
	Key       string `bson:"key" json:"-"`
	Name      string `bson:"name" json:"name"`
	Headline  string `bson:"headline" json:"headline"`
	Summary   string `bson:"summary,omitempty" json:"summary"`
	Email     string `bson:"email,omitempty" json:"email"`
	Location  string `bson:"location,omitempty" json:"location"`
	GithubURL string `bson:"githubUrl,omitempty" json:"githubUrl"`
	Linkedin  string `bson:"linkedinUrl,omitempty" json:"linkedinUrl"`
	ResumeURL string `bson:"resumeUrl,omitempty" json:"resumeUrl"`
	Avatar    Image  `bson:"avatar,omitempty" json:"avatar"`
	UpdatedAt int64  `bson:"updatedAt" json:"updatedAt"`
}

type About struct {
	Key       string   `bson:"key" json:"-"`
	Heading   string   `bson:"heading" json:"heading"`
	Body      string   `bson:"body" json:"body"` // markdown
	Skills    []string `bson:"skills" json:"skills"`
	Photo     Image    `bson:"photo,omitempty" json:"photo"`
	UpdatedAt int64    `bson:"updatedAt" json:"updatedAt"`
}

type Theme struct {
	Key        string `bson:"key" json:"-"`
	Primary    string `bson:"primary" json:"primary"`
	Accent     string `bson:"accent" json:"accent"`
	Background string `bson:"background" json:"background"`
	Font       string `bson:"font,omitempty" json:"font"`
	UpdatedAt  int64  `bson:"updatedAt" json:"updatedAt"`
}
