package databases

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"servicecredit_backend/internals/configs"
	notificationModel "servicecredit_backend/internals/features/notifications/model"
	activityModel "servicecredit_backend/internals/features/school/activities/model"
	referenceModel "servicecredit_backend/internals/features/school/reference/model"
	userModel "servicecredit_backend/internals/features/users/user/model"
)

// Connect opens the postgres connection and migrates the schema.
// The handle is returned, not stored globally: every service/controller
// receives it at construction time.
func Connect() *gorm.DB {
	dsn := configs.DatabaseDSN()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // safe behind PgBouncer transaction pooling
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}

	log.Println("database connected")
	return db
}

// Migrate keeps the schema in sync with the models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&referenceModel.DepartmentModel{},
		&userModel.TeacherProfileModel{},
		&referenceModel.ServiceCategoryModel{},
		&activityModel.ActivityModel{},
		&activityModel.AttachmentModel{},
		&activityModel.ApprovalModel{},
		&notificationModel.NotificationModel{},
	)
}

// TunePool sizes the underlying sql pool.
func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Close releases the pool on shutdown.
func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
