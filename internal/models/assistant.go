package models

type Role string

const RoleAdmin Role = "admin"

// Assistant is a staff account. Password holds the bcrypt hash, never the plaintext.
type Assistant struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Phone    string `bson:"phone" json:"phone"`
	Role     Role   `bson:"role" json:"role"`
	Password string `bson:"password" json:"-"`
}
