// Package seeds loads the baseline lookup data every deployment needs:
// row statuses, roles, node types, the default product and the demo admin
// account. Seeding is idempotent; rows already present are left untouched.
package seeds

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"adaptivegame/internal/infrastructure/persistence/models"
)

//go:embed seeds.yaml
var seedData []byte

type seedFile struct {
	RowStatuses []string `yaml:"row_statuses"`
	Roles       []struct {
		Rol         string `yaml:"rol"`
		Description string `yaml:"description"`
	} `yaml:"roles"`
	NodeTypes []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	} `yaml:"node_types"`
	Products []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Icon        string `yaml:"icon"`
	} `yaml:"products"`
	Users []struct {
		Name         string `yaml:"name"`
		Lastname     string `yaml:"lastname"`
		Email        string `yaml:"email"`
		Rol          string `yaml:"rol"`
		PasswordHash string `yaml:"password_hash"`
	} `yaml:"users"`
}

// Apply inserts the baseline lookup rows. Safe to run on every start.
func Apply(db *gorm.DB) error {
	var file seedFile
	if err := yaml.Unmarshal(seedData, &file); err != nil {
		return fmt.Errorf("parse embedded seeds: %w", err)
	}

	for _, status := range file.RowStatuses {
		row := models.RowStatusModel{Status: status}
		if err := db.FirstOrCreate(&row, models.RowStatusModel{Status: status}).Error; err != nil {
			return fmt.Errorf("seed row status %q: %w", status, err)
		}
	}

	for _, r := range file.Roles {
		desc := r.Description
		row := models.RoleModel{Rol: r.Rol, Description: &desc}
		if err := db.FirstOrCreate(&row, models.RoleModel{Rol: r.Rol}).Error; err != nil {
			return fmt.Errorf("seed role %q: %w", r.Rol, err)
		}
	}

	for _, nt := range file.NodeTypes {
		row := models.NodeTypeModel{Name: nt.Name, Description: nt.Description}
		if err := db.FirstOrCreate(&row, models.NodeTypeModel{Name: nt.Name}).Error; err != nil {
			return fmt.Errorf("seed node type %q: %w", nt.Name, err)
		}
	}

	for _, p := range file.Products {
		desc := p.Description
		row := models.ProductModel{Name: p.Name, Description: &desc, Icon: p.Icon}
		if err := db.Where(models.ProductModel{Name: p.Name}).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}

	for _, u := range file.Users {
		hash := u.PasswordHash
		row := models.UserModel{
			Name:         u.Name,
			Lastname:     u.Lastname,
			Email:        u.Email,
			Rol:          u.Rol,
			PasswordHash: &hash,
		}
		if err := db.Where(models.UserModel{Email: u.Email}).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("seed user %q: %w", u.Email, err)
		}
	}

	return nil
}
