package models

// ChoirMember represents a member of the choir. Identity management lives in
// an external system; this table only carries what the lifecycle services
// need for leader, singer and musician references.
type ChoirMember struct {
	BaseModel
	FullName    string         `json:"full_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Email       string         `json:"email" gorm:"size:100;uniqueIndex;not null" validate:"required,email"`
	PhoneNumber string         `json:"phone_number" gorm:"size:20"`
	Category    MemberCategory `json:"category" gorm:"type:varchar(20);not null;default:'SINGER'"`
	IsAdmin     bool           `json:"is_admin" gorm:"default:false"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for ChoirMember
func (ChoirMember) TableName() string {
	return "choir_members"
}
