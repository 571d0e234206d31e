package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/content"
	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/store"
)

func main() {
	addUserCmd := flag.NewFlagSet("add-user", flag.ExitOnError)
	username := addUserCmd.String("username", "", "Username for the new admin user")
	password := addUserCmd.String("password", "", "Password for the new admin user")

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add-user":
		addUserCmd.Parse(os.Args[2:])
		if *username == "" || *password == "" {
			fmt.Println("username and password are required")
			addUserCmd.PrintDefaults()
			os.Exit(1)
		}
		createUser(*username, *password)
	case "seed":
		seedContent()
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("expected 'add-user' or 'seed' subcommand")
}

func openStore() *store.Store {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./mrtz.db"
	}

	db, err := store.NewStore(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	// Ensure tables exist if running cli before server
	if err := db.InitSchema(); err != nil {
		log.Fatalf("Failed to init schema: %v", err)
	}
	return db
}

func createUser(username, password string) {
	db := openStore()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	if err := db.CreateUser(username, string(hashedPassword)); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Printf("User '%s' created successfully.\n", username)
}

// seedContent writes the sample portfolio and drops documents when none
// exist yet. Existing documents are left alone.
func seedContent() {
	db := openStore()

	if err := content.NewPortfolio(db).EnsureSeeded(); err != nil {
		log.Fatalf("Failed to seed portfolio: %v", err)
	}
	if err := content.NewDrops(db).EnsureSeeded(); err != nil {
		log.Fatalf("Failed to seed drops: %v", err)
	}

	fmt.Println("Sample content seeded.")
}
