package data

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Localized holds the English and French variants of a text field.
type Localized struct {
	EN string `bson:"en" json:"en"`
	FR string `bson:"fr" json:"fr"`
}

// Empty reports whether neither language is filled in.
func (l Localized) Empty() bool { return l.EN == "" && l.FR == "" }

// User maps to users collection (id, email, password hash, role, timestamps)
type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string        `bson:"email" json:"email"`
	Password  string        `bson:"password" json:"-"`
	Role      string        `bson:"role" json:"role"`
	CreatedAt time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updatedAt"`
}

// Message is a contact form submission.
type Message struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Subject   string        `bson:"subject" json:"subject"`
	Body      string        `bson:"body" json:"body"`
	ClientIP  string        `bson:"client_ip" json:"clientIp"`
	Read      bool          `bson:"read" json:"read"`
	CreatedAt time.Time     `bson:"created_at" json:"createdAt"`
}

// Testimonial is a visitor submitted recommendation. It is only shown on
// the public site once approved.
type Testimonial struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Role      string        `bson:"role" json:"role"`
	Company   string        `bson:"company" json:"company"`
	Content   string        `bson:"content" json:"content"`
	Rating    int           `bson:"rating" json:"rating"`
	ClientIP  string        `bson:"client_ip" json:"-"`
	Approved  bool          `bson:"approved" json:"approved"`
	CreatedAt time.Time     `bson:"created_at" json:"createdAt"`
}

// Meta is embedded in every ordered content entry.
type Meta struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Order     int           `bson:"order" json:"order"`
	CreatedAt time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updatedAt"`
}

func (m *Meta) meta() *Meta { return m }

type Project struct {
	Meta        `bson:",inline"`
	Title       Localized `bson:"title" json:"title"`
	Description Localized `bson:"description" json:"description"`
	Tags        []string  `bson:"tags" json:"tags"`
	ImageURL    string    `bson:"image_url" json:"imageUrl"`
	ImageKey    string    `bson:"image_key" json:"imageKey"`
	RepoURL     string    `bson:"repo_url" json:"repoUrl"`
	LiveURL     string    `bson:"live_url" json:"liveUrl"`
	Featured    bool      `bson:"featured" json:"featured"`
}

// StoredObject is the storage key of the project's image, if any.
func (p *Project) StoredObject() string { return p.ImageKey }

type Skill struct {
	Meta     `bson:",inline"`
	Name     string `bson:"name" json:"name"`
	Category string `bson:"category" json:"category"`
	Level    int    `bson:"level" json:"level"` // 1-5
	Icon     string `bson:"icon" json:"icon"`
}

type Experience struct {
	Meta        `bson:",inline"`
	Company     string     `bson:"company" json:"company"`
	Role        Localized  `bson:"role" json:"role"`
	Description Localized  `bson:"description" json:"description"`
	Location    string     `bson:"location" json:"location"`
	StartDate   time.Time  `bson:"start_date" json:"startDate"`
	EndDate     *time.Time `bson:"end_date,omitempty" json:"endDate,omitempty"`
	Current     bool       `bson:"current" json:"current"`
}

type Education struct {
	Meta        `bson:",inline"`
	Institution string     `bson:"institution" json:"institution"`
	Degree      Localized  `bson:"degree" json:"degree"`
	Field       Localized  `bson:"field" json:"field"`
	StartDate   time.Time  `bson:"start_date" json:"startDate"`
	EndDate     *time.Time `bson:"end_date,omitempty" json:"endDate,omitempty"`
}

type Hobby struct {
	Meta        `bson:",inline"`
	Name        Localized `bson:"name" json:"name"`
	Description Localized `bson:"description" json:"description"`
	Icon        string    `bson:"icon" json:"icon"`
}

// Resume is an uploaded CV. At most one resume per language is active.
type Resume struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Language  string        `bson:"language" json:"language"`
	FileName  string        `bson:"file_name" json:"fileName"`
	FileKey   string        `bson:"file_key" json:"fileKey"`
	URL       string        `bson:"url" json:"url"`
	Size      int64         `bson:"size" json:"size"`
	Active    bool          `bson:"active" json:"active"`
	CreatedAt time.Time     `bson:"created_at" json:"createdAt"`
}

// ContactInfo is the single document describing how to reach the owner.
type ContactInfo struct {
	ID        string    `bson:"_id" json:"-"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	Location  Localized `bson:"location" json:"location"`
	LinkedIn  string    `bson:"linkedin" json:"linkedin"`
	GitHub    string    `bson:"github" json:"github"`
	Website   string    `bson:"website" json:"website"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
