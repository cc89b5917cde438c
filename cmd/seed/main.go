package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/couleurbar/theke-system/internal/core/domain"
	"github.com/couleurbar/theke-system/internal/infrastructure/config"
	mongodb "github.com/couleurbar/theke-system/internal/infrastructure/db/mongo"
)

func main() {
	// CLI flags
	email := flag.String("email", "", "Admin email address")
	password := flag.String("password", "", "Admin password")
	couleurname := flag.String("couleurname", "", "Admin couleurname")
	withCatalog := flag.Bool("catalog", true, "Seed the product catalog")
	flag.Parse()

	// Fall back to environment variables
	if *email == "" {
		*email = os.Getenv("SEED_EMAIL")
	}
	if *password == "" {
		*password = os.Getenv("SEED_PASSWORD")
	}
	if *couleurname == "" {
		*couleurname = os.Getenv("SEED_COULEURNAME")
	}

	// Fall back to defaults
	if *email == "" {
		*email = "admin@theke.local"
	}
	if *password == "" {
		*password = "admin123"
		log.Println("WARNING: Using default password 'admin123'. Change immediately in production!")
	}
	if *couleurname == "" {
		*couleurname = "Maximus"
	}

	cfg := config.Load()

	ctx := context.Background()
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer client.Disconnect(ctx)
	log.Println("Connected to database")

	members := mongodb.NewMemberRepository(db)
	products := mongodb.NewProductRepository(db)

	if err := members.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create member indexes: %v", err)
	}
	if err := products.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create product indexes: %v", err)
	}

	if err := seedAdmin(ctx, members, *email, *password, *couleurname); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	if *withCatalog {
		if err := seedCatalog(ctx, products); err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
	}

	log.Println("Seeding complete")
}

func seedAdmin(ctx context.Context, members *mongodb.MemberRepository, email, password, couleurname string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = members.Create(ctx, &domain.Member{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    "Max",
		LastName:     "Mustermann",
		Couleurname:  couleurname,
		Role:         domain.RoleAdmin,
		Rank:         "bursche",
		TabBalance:   0,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, domain.ErrMemberExists) {
		log.Printf("Admin %s already exists, skipping", email)
		return nil
	}
	if err != nil {
		return err
	}
	log.Printf("Created admin %s (%s)", couleurname, email)
	return nil
}

type catalogEntry struct {
	name      string
	price     float64
	category  string
	available bool
	popular   bool
}

var catalog = []catalogEntry{
	// Getränke
	{"Bier 0,5L", 3.5, "Getränke", true, true},
	{"Bier 0,33L", 2.5, "Getränke", true, true},
	{"Radler 0,5L", 3.5, "Getränke", true, false},
	{"Wein Rot 0,25L", 4.0, "Getränke", true, false},
	{"Wein Weiß 0,25L", 4.0, "Getränke", true, false},
	{"Sekt 0,1L", 3.5, "Getränke", true, false},
	{"Schnaps 2cl", 2.0, "Getränke", true, true},
	{"Vodka Red Bull", 5.0, "Getränke", true, true},
	{"Gin Tonic", 5.5, "Getränke", true, false},
	{"Whisky Cola", 5.5, "Getränke", true, false},
	{"Cola 0,33L", 2.0, "Getränke", true, true},
	{"Almdudler 0,33L", 2.0, "Getränke", true, false},
	{"Spezi 0,33L", 2.0, "Getränke", true, false},
	{"Wasser 0,5L", 1.5, "Getränke", true, false},
	{"Red Bull", 3.0, "Getränke", true, true},

	// Toast
	{"Toast Schinken-Käse", 3.0, "Toast", true, true},
	{"Toast Salami-Käse", 3.0, "Toast", true, false},
	{"Toast Thunfisch", 3.5, "Toast", true, false},
	{"Toast Vegetarisch", 2.5, "Toast", true, false},

	// Zigarren
	{"Toscano Classico", 4.5, "Zigarren", true, false},
	{"Villiger Premium No.7", 5.0, "Zigarren", true, false},
	{"Handelsgold Tip-Cigarillos", 3.5, "Zigarren", true, true},
	{"Montecristo No.4", 12.0, "Zigarren", false, false},

	// Snus
	{"General White Portion", 5.5, "Snus", true, true},
	{"Siberia Red", 6.0, "Snus", true, false},
	{"Odens Cold Dry", 5.0, "Snus", true, false},
	{"Velo Ice Cool", 5.5, "Snus", true, false},
}

func seedCatalog(ctx context.Context, products *mongodb.ProductRepository) error {
	now := time.Now().UTC()
	for _, entry := range catalog {
		_, err := products.Create(ctx, &domain.Product{
			ID:        uuid.NewString(),
			Name:      entry.name,
			Price:     entry.price,
			Category:  entry.category,
			Available: entry.available,
			Popular:   entry.popular,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}
		log.Printf("Created product %s (EUR %.2f)", entry.name, entry.price)
	}
	return nil
}
