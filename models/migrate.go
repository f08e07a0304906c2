package models

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// notifiedTables are the tables whose row changes are pushed to realtime
// subscribers via the table_changes notification channel.
var notifiedTables = []string{"categories", "panchayaths", "registrations"}

// AutoMigrate creates or updates the schema and installs the change-notify
// triggers the realtime listener depends on.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{}, &Role{}, &Permission{},
		&Category{}, &Panchayath{}, &Registration{},
	); err != nil {
		return err
	}
	return installChangeTriggers(db)
}

func installChangeTriggers(db *gorm.DB) error {
	fn := `
CREATE OR REPLACE FUNCTION notify_table_change() RETURNS trigger AS $$
BEGIN
    PERFORM pg_notify(
        'table_changes',
        json_build_object('table', TG_TABLE_NAME, 'action', lower(TG_OP))::text
    );
    RETURN NULL;
END;
$$ LANGUAGE plpgsql;`
	if err := db.Exec(fn).Error; err != nil {
		return fmt.Errorf("create notify function: %w", err)
	}

	for _, table := range notifiedTables {
		stmt := fmt.Sprintf(`
DROP TRIGGER IF EXISTS %[1]s_notify_change ON %[1]s;
CREATE TRIGGER %[1]s_notify_change
AFTER INSERT OR UPDATE OR DELETE ON %[1]s
FOR EACH STATEMENT EXECUTE FUNCTION notify_table_change();`, table)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create trigger for %s: %w", table, err)
		}
	}
	return nil
}

// seedPermissions covers every gated admin route.
var seedPermissions = []Permission{
	{Name: "categories_view", Resource: "categories", Description: "View categories"},
	{Name: "categories_create", Resource: "categories", Description: "Create categories"},
	{Name: "categories_edit", Resource: "categories", Description: "Edit categories"},
	{Name: "categories_delete", Resource: "categories", Description: "Delete categories"},
	{Name: "panchayaths_view", Resource: "panchayaths", Description: "View panchayaths"},
	{Name: "panchayaths_create", Resource: "panchayaths", Description: "Create panchayaths"},
	{Name: "panchayaths_edit", Resource: "panchayaths", Description: "Edit panchayaths"},
	{Name: "panchayaths_delete", Resource: "panchayaths", Description: "Delete panchayaths"},
	{Name: "registrations_view", Resource: "registrations", Description: "View registrations"},
	{Name: "registrations_decide", Resource: "registrations", Description: "Approve or reject registrations"},
	{Name: "registrations_export", Resource: "registrations", Description: "Export registrations"},
}

// seedCategories are the scheme offerings shown on the public page, in their
// fixed display order.
var seedCategories = []Category{
	{Name: "Pennyekart Free Registration", ActualFee: dec(0), OfferFee: dec(0)},
	{Name: "Pennyekart Paid Registration", ActualFee: dec(800), OfferFee: dec(300)},
	{Name: "Farmelife", ActualFee: dec(1000), OfferFee: dec(400)},
	{Name: "Organelife", ActualFee: dec(1000), OfferFee: dec(400)},
	{Name: "Foodelife", ActualFee: dec(1000), OfferFee: dec(400)},
	{Name: "Entrelife", ActualFee: dec(1000), OfferFee: dec(400)},
	{Name: "Job Card", ActualFee: dec(2000), OfferFee: dec(800)},
}

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// Seed installs the baseline reference data: permissions, the admin role, an
// initial admin user and the default category set. It is idempotent.
func Seed(db *gorm.DB, adminLogin, adminPassword string) error {
	for _, p := range seedPermissions {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&p).Error; err != nil {
			return err
		}
	}

	var admin Role
	if err := db.Where(Role{Name: "admin"}).
		Attrs(Role{Description: "Full access"}).
		FirstOrCreate(&admin).Error; err != nil {
		return err
	}
	var all []Permission
	if err := db.Find(&all).Error; err != nil {
		return err
	}
	if err := db.Model(&admin).Association("Permissions").Replace(all); err != nil {
		return err
	}

	for i, cat := range seedCategories {
		cat.IsActive = true
		cat.IsHighlighted = i == 0
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&cat).Error; err != nil {
			return err
		}
	}

	if adminLogin == "" || adminPassword == "" {
		slog.Warn("ADMIN_LOGIN/ADMIN_PASSWORD not set, skipping admin user seed")
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	var user User
	if err := db.Where(User{Login: adminLogin}).
		Attrs(User{FullName: "Administrator", PasswordHash: string(hash)}).
		FirstOrCreate(&user).Error; err != nil {
		return err
	}
	return db.Model(&user).Association("Roles").Append(&admin)
}
