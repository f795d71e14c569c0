package models

import "gorm.io/gorm"

const (
	RoleAuxiliary = "auxiliary"
	RoleOperator  = "operator"
	RoleHandler   = "handler"
	RoleDriver    = "driver"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Role     string `json:"role"`
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-"`
}
