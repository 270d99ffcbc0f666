package model

// Contact is a person record in the contact book. The JSON field names
// match the remote contact API's wire format, including the single-"d"
// "residenceAdress" the API has always used.
type Contact struct {
	ID               int    `gorm:"column:id;primaryKey" json:"id"`
	Name             string `gorm:"column:name" json:"name"`
	Surname          string `gorm:"column:surname" json:"surname"`
	FatherName       string `gorm:"column:father_name" json:"fatherName"`
	TelephoneNumber  string `gorm:"column:telephone_number" json:"telephoneNumber"`
	ResidenceAddress string `gorm:"column:residence_address" json:"residenceAdress"`
	Description      string `gorm:"column:description" json:"description"`
}

func (Contact) TableName() string {
	return "contacts"
}
