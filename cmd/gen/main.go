package main

import (
	"github.com/kanruethaiii/backend-cat/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// Regenerates ./dal from the shop models against a scratch sqlite database.
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./dal",
		Mode:    gen.WithoutContext | gen.WithDefaultQuery | gen.WithQueryInterface, // generate mode
	})

	db, err := gorm.Open(sqlite.Open("file:gen?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic(err)
	}
	if err = db.AutoMigrate(model.ALL_SHOP_TABLES...); err != nil {
		panic(err)
	}

	g.UseDB(db) // reuse your gorm db

	g.ApplyBasic(model.ALL_SHOP_TABLES...)

	g.Execute()
}
