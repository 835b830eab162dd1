package migration

import (
	"fmt"
	"log"
	"nutri-tracker-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Food{}); err != nil {
		log.Fatalf("Error migrating food database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodServing{}); err != nil {
		log.Fatalf("Error migrating food serving database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MealLog{}); err != nil {
		log.Fatalf("Error migrating meal log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.NutritionGoal{}); err != nil {
		log.Fatalf("Error migrating nutrition goal database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ServingImportJob{}); err != nil {
		log.Fatalf("Error migrating serving import job database: %v", err)
		return err
	}

	// default_serving_id is a non-owning pointer into food_servings, so the
	// constraint is added after both tables exist. Clearing on delete keeps
	// the food usable when its default serving goes away.
	db.Exec(`DO $$ BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM pg_constraint WHERE conname = 'fk_foods_default_serving'
		) THEN
			ALTER TABLE foods
				ADD CONSTRAINT fk_foods_default_serving
				FOREIGN KEY (default_serving_id) REFERENCES food_servings (id)
				ON DELETE SET NULL;
		END IF;
	END $$;`)

	fmt.Println("Database migration complete")
	return nil
}
