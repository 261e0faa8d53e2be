package models

import "gorm.io/gorm"

// AllModels returns every model for migration.
// Article and Event must come before the tables that reference them.
func AllModels() []interface{} {
	return []interface{}{
		&Article{},
		&Event{},
		&Tag{},
		&ArticleTag{},
		&Job{},
		&Service{},
		&TeamMember{},
		&Partner{},
		&HallOfFame{},
		&SuccessStory{},
		&Subscriber{},
		&Media{},
		&Comment{},
		&Analytics{},
		&ContactMessage{},
	}
}

// AutoMigrate runs GORM auto-migration for all models. The article-tag
// join table is registered first so the composite-key model backs the
// many2many association.
func AutoMigrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Article{}, "Tags", &ArticleTag{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&Tag{}, "Articles", &ArticleTag{}); err != nil {
		return err
	}
	return db.AutoMigrate(AllModels()...)
}
