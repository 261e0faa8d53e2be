package models

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"gorm.io/gen"
	"gorm.io/gorm"
)

// GenerateQueryHelpers migrates the schema and regenerates the typed query
// helpers under ./generated. Run with GENERATE_MODELS=true; the process
// exits after generation.
func GenerateQueryHelpers(db *gorm.DB) {
	if err := db.Exec("SELECT 1").Error; err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./generated",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(AllModels()...)

	fmt.Println("Migrating models...")
	if err := AutoMigrate(db); err != nil {
		fmt.Printf("Error during migration: %v\n", err)
		os.Exit(1)
	}

	ReportColumnMismatches(db)

	g.Execute()
	fmt.Println("Query helper generation complete!")
}

// ReportColumnMismatches prints database columns that have no matching
// column tag in the Go models. Useful after hand-edited migrations.
func ReportColumnMismatches(db *gorm.DB) {
	mappings := map[string]interface{}{
		"articles":         Article{},
		"events":           Event{},
		"tags":             Tag{},
		"article_tags":     ArticleTag{},
		"jobs":             Job{},
		"services":         Service{},
		"team_members":     TeamMember{},
		"partners":         Partner{},
		"hall_of_fames":    HallOfFame{},
		"success_stories":  SuccessStory{},
		"subscribers":      Subscriber{},
		"media":            Media{},
		"comments":         Comment{},
		"analytics":        Analytics{},
		"contact_messages": ContactMessage{},
	}

	total := 0
	for table, model := range mappings {
		columns, err := tableColumns(db, table)
		if err != nil {
			fmt.Printf("--- Table: %s --- %v\n", table, err)
			continue
		}

		known := make(map[string]bool)
		for _, f := range modelColumns(model) {
			known[f] = true
		}

		var missing []string
		for _, col := range columns {
			if !known[col] {
				missing = append(missing, col)
			}
		}
		if len(missing) > 0 {
			fmt.Printf("--- Table: %s --- %d columns not in model: %s\n",
				table, len(missing), strings.Join(missing, ", "))
			total += len(missing)
		}
	}
	fmt.Printf("Total mismatched columns: %d\n", total)
}

func tableColumns(db *gorm.DB, table string) ([]string, error) {
	var columns []string
	query := `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = ?
		AND table_schema = CURRENT_SCHEMA()
		ORDER BY ordinal_position
	`
	if err := db.Raw(query, table).Scan(&columns).Error; err != nil {
		return nil, fmt.Errorf("error querying columns for table %s: %w", table, err)
	}
	return columns, nil
}

func modelColumns(model interface{}) []string {
	var fields []string
	t := reflect.TypeOf(model)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			continue
		}
		if col := field.Tag.Get("db"); col != "" {
			fields = append(fields, col)
		}
	}
	return fields
}
