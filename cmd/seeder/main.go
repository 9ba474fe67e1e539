package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fieldstock/inventory-backend/generated/db"
	"github.com/fieldstock/inventory-backend/internal/config"
	"github.com/fieldstock/inventory-backend/internal/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

type SeedData struct {
	Districts   []District   `yaml:"districts"`
	Mandals     []Mandal     `yaml:"mandals"`
	Villages    []Village    `yaml:"villages"`
	Departments []Department `yaml:"departments"`
	Catalogue   []Catalogue  `yaml:"catalogue"`
	Users       []User       `yaml:"users"`
	UserRoles   []UserRole   `yaml:"user_roles"`
}

type District struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

type Mandal struct {
	Name     string `yaml:"name"`
	Code     string `yaml:"code"`
	District string `yaml:"district"`
}

type Village struct {
	Name   string `yaml:"name"`
	Code   string `yaml:"code"`
	Mandal string `yaml:"mandal"`
}

type Department struct {
	OrgCode      string `yaml:"org_code"`
	OrgShortname string `yaml:"org_shortname"`
	OrgName      string `yaml:"org_name"`
	OrgType      string `yaml:"org_type"`
}

type Catalogue struct {
	ItemCode     string      `yaml:"item_code"`
	ItemName     string      `yaml:"item_name"`
	Unit         string      `yaml:"unit"`
	Category     string      `yaml:"category"`
	ResourceType string      `yaml:"resource_type"`
	Attributes   []Attribute `yaml:"attributes"`
}

type Attribute struct {
	Key      string `yaml:"key"`
	Datatype string `yaml:"datatype"`
}

type User struct {
	Email      string `yaml:"email"`
	Name       string `yaml:"name"`
	Password   string `yaml:"password"`
	Phone      string `yaml:"phone"`
	Superuser  bool   `yaml:"superuser"`
	Department string `yaml:"department"` // org_code, empty for unscoped users
	Village    string `yaml:"village"`
}

type UserRole struct {
	UserEmail string `yaml:"user_email"`
	RoleName  string `yaml:"role_name"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		printUsage()
		return errors.New("command required")
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "seed":
		return seedCommand(args)
	case "nuke":
		return nukeCommand(args)
	case "help", "--help", "-h":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func seedCommand(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	file := fs.String("file", "", "YAML file to seed from")
	dir := fs.String("dir", "", "Directory of YAML files to seed from")
	dryRun := fs.Bool("dry-run", false, "Validate files without making database changes")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	files, err := resolveFiles(*file, *dir)
	if err != nil {
		return err
	}

	seedData, err := loadSeedData(files)
	if err != nil {
		return fmt.Errorf("failed to load seed data: %w", err)
	}

	if *dryRun {
		fmt.Println("dry run: validating data structure")
		return validateSeedData(seedData)
	}

	cfg := config.Load()
	seedDB, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer seedDB.Close()

	fmt.Printf("seeding database from %d file(s)\n", len(files))
	return applySeedData(context.Background(), seedDB.Queries(), seedData)
}

func nukeCommand(args []string) error {
	fs := flag.NewFlagSet("nuke", flag.ExitOnError)
	force := fs.Bool("force", false, "Skip confirmation prompt")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	if !*force && !confirmNuke() {
		fmt.Println("operation cancelled")
		return nil
	}

	return nukeDatabase()
}

func resolveFiles(file, dir string) ([]string, error) {
	if file == "" && dir == "" {
		return nil, errors.New("must specify either --file or --dir")
	}

	if file != "" && dir != "" {
		return nil, errors.New("cannot specify both --file and --dir")
	}

	if file != "" {
		return []string{file}, nil
	}

	return findYAMLFiles(dir)
}

func findYAMLFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && isYAMLFile(path) {
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan directory %s: %w", dir, err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no YAML files found in directory: %s", dir)
	}

	return files, nil
}

func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func loadSeedData(files []string) (*SeedData, error) {
	combined := &SeedData{}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", file, err)
		}

		var fileData SeedData
		if err := yaml.Unmarshal(data, &fileData); err != nil {
			return nil, fmt.Errorf("failed to parse YAML in %s: %w", file, err)
		}

		combined.Districts = append(combined.Districts, fileData.Districts...)
		combined.Mandals = append(combined.Mandals, fileData.Mandals...)
		combined.Villages = append(combined.Villages, fileData.Villages...)
		combined.Departments = append(combined.Departments, fileData.Departments...)
		combined.Catalogue = append(combined.Catalogue, fileData.Catalogue...)
		combined.Users = append(combined.Users, fileData.Users...)
		combined.UserRoles = append(combined.UserRoles, fileData.UserRoles...)
	}

	return combined, nil
}

func validateSeedData(data *SeedData) error {
	fmt.Printf("  Districts: %d\n", len(data.Districts))
	fmt.Printf("  Mandals: %d\n", len(data.Mandals))
	fmt.Printf("  Villages: %d\n", len(data.Villages))
	fmt.Printf("  Departments: %d\n", len(data.Departments))
	fmt.Printf("  Catalogue: %d\n", len(data.Catalogue))
	fmt.Printf("  Users: %d\n", len(data.Users))
	fmt.Printf("  User Roles: %d\n", len(data.UserRoles))
	fmt.Println("data structure is valid")
	return nil
}

func applySeedData(ctx context.Context, queries *db.Queries, data *SeedData) error {
	// districts first, everything geographic hangs off them
	districtIDs := make(map[string]uuid.UUID)
	for _, d := range data.Districts {
		created, err := queries.CreateDistrict(ctx, db.CreateDistrictParams{
			Name: d.Name,
			Code: optionalText(d.Code),
		})
		if err != nil {
			return fmt.Errorf("failed to create district %s: %w", d.Name, err)
		}
		districtIDs[d.Name] = created.ID
		fmt.Printf("created district: %s\n", d.Name)
	}

	mandalIDs := make(map[string]uuid.UUID)
	mandalDistricts := make(map[string]uuid.UUID)
	for _, m := range data.Mandals {
		districtID, ok := districtIDs[m.District]
		if !ok {
			return fmt.Errorf("mandal %s references unknown district: %s", m.Name, m.District)
		}
		created, err := queries.CreateMandal(ctx, db.CreateMandalParams{
			Name:       m.Name,
			Code:       optionalText(m.Code),
			DistrictID: districtID,
		})
		if err != nil {
			return fmt.Errorf("failed to create mandal %s: %w", m.Name, err)
		}
		mandalIDs[m.Name] = created.ID
		mandalDistricts[m.Name] = districtID
		fmt.Printf("created mandal: %s\n", m.Name)
	}

	villageIDs := make(map[string]uuid.UUID)
	for _, v := range data.Villages {
		mandalID, ok := mandalIDs[v.Mandal]
		if !ok {
			return fmt.Errorf("village %s references unknown mandal: %s", v.Name, v.Mandal)
		}
		created, err := queries.CreateVillage(ctx, db.CreateVillageParams{
			Name:       v.Name,
			Code:       optionalText(v.Code),
			MandalID:   mandalID,
			DistrictID: mandalDistricts[v.Mandal],
		})
		if err != nil {
			return fmt.Errorf("failed to create village %s: %w", v.Name, err)
		}
		villageIDs[v.Name] = created.ID
		fmt.Printf("created village: %s\n", v.Name)
	}

	deptIDs := make(map[string]uuid.UUID)
	for _, dept := range data.Departments {
		created, err := queries.CreateDepartment(ctx, db.CreateDepartmentParams{
			OrgCode:      dept.OrgCode,
			OrgShortname: dept.OrgShortname,
			OrgName:      dept.OrgName,
			OrgType:      optionalText(dept.OrgType),
		})
		if err != nil {
			return fmt.Errorf("failed to create department %s: %w", dept.OrgCode, err)
		}
		deptIDs[dept.OrgCode] = created.ID
		fmt.Printf("created department: %s\n", dept.OrgCode)
	}

	for _, entry := range data.Catalogue {
		info, err := queries.CreateItemInfo(ctx, db.CreateItemInfoParams{
			ItemCode:     entry.ItemCode,
			ItemName:     entry.ItemName,
			Unit:         optionalText(entry.Unit),
			Category:     optionalText(entry.Category),
			ResourceType: optionalText(entry.ResourceType),
		})
		if err != nil {
			return fmt.Errorf("failed to create catalogue entry %s: %w", entry.ItemCode, err)
		}
		for _, attr := range entry.Attributes {
			if _, err := queries.CreateItemAttribute(ctx, db.CreateItemAttributeParams{
				ItemInfoID: info.ID,
				Key:        attr.Key,
				Datatype:   db.AttributeDatatype(attr.Datatype),
			}); err != nil {
				return fmt.Errorf("failed to create attribute %s.%s: %w", entry.ItemCode, attr.Key, err)
			}
		}
		fmt.Printf("created catalogue entry: %s\n", entry.ItemCode)
	}

	userIDs := make(map[string]uuid.UUID)
	for _, u := range data.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", u.Email, err)
		}

		params := db.CreateUserParams{
			Email:        u.Email,
			Name:         u.Name,
			PasswordHash: string(hash),
			Phone:        optionalText(u.Phone),
			Active:       true,
			IsSuperuser:  u.Superuser,
		}
		if u.Department != "" {
			deptID, ok := deptIDs[u.Department]
			if !ok {
				return fmt.Errorf("user %s references unknown department: %s", u.Email, u.Department)
			}
			params.DeptID = &deptID
		}
		if u.Village != "" {
			villageID, ok := villageIDs[u.Village]
			if !ok {
				return fmt.Errorf("user %s references unknown village: %s", u.Email, u.Village)
			}
			params.VillageID = &villageID
		}

		created, err := queries.CreateUser(ctx, params)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.Email, err)
		}
		userIDs[u.Email] = created.ID
		fmt.Printf("created user: %s\n", u.Email)
	}

	for _, ur := range data.UserRoles {
		userID, ok := userIDs[ur.UserEmail]
		if !ok {
			return fmt.Errorf("role assignment references unknown user: %s", ur.UserEmail)
		}
		role, err := queries.GetRoleByName(ctx, ur.RoleName)
		if err != nil {
			return fmt.Errorf("failed to look up role %s: %w", ur.RoleName, err)
		}
		if err := queries.AssignUserRole(ctx, db.AssignUserRoleParams{
			UserID: userID,
			RoleID: role.ID,
		}); err != nil {
			return fmt.Errorf("failed to assign role %s to %s: %w", ur.RoleName, ur.UserEmail, err)
		}
		fmt.Printf("assigned role %s to %s\n", ur.RoleName, ur.UserEmail)
	}

	fmt.Println("seeding complete")
	return nil
}

func optionalText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

func nukeDatabase() error {
	cfg := config.Load()

	sqlDB, err := goose.OpenDBWithDriver("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			fmt.Printf("warning: failed to close database: %v\n", err)
		}
	}()

	fmt.Println("resetting database with goose...")

	fmt.Println("rolling back all migrations...")
	if err := goose.Reset(sqlDB, "db/migrations"); err != nil {
		return fmt.Errorf("failed to reset migrations: %w", err)
	}

	fmt.Println("applying all migrations...")
	if err := goose.Up(sqlDB, "db/migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	fmt.Println("database reset complete - ready for seeding")
	return nil
}

func confirmNuke() bool {
	fmt.Print("warning: this will delete all data from the database. are you sure? (yes/no): ")

	var response string
	if _, err := fmt.Scanln(&response); err != nil {
		return false
	}

	return strings.ToLower(strings.TrimSpace(response)) == "yes"
}

func printUsage() {
	fmt.Println("Seeder Tool - Database seeding utility for the inventory backend")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  seeder <command> [flags]")
	fmt.Println()
	fmt.Println("COMMANDS:")
	fmt.Println("  seed        Seed database from YAML files")
	fmt.Println("  nuke        Delete all data from database")
	fmt.Println("  help        Show this help message")
	fmt.Println()
	fmt.Println("SEED FLAGS:")
	fmt.Println("  --file      Path to a single YAML file")
	fmt.Println("  --dir       Path to directory containing YAML files")
	fmt.Println("  --dry-run   Validate files without making database changes")
	fmt.Println()
	fmt.Println("NUKE FLAGS:")
	fmt.Println("  --force     Skip confirmation prompt")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  seeder seed --file dev-data.yaml")
	fmt.Println("  seeder seed --dir ./seed-data/")
	fmt.Println("  seeder seed --dir ./seed-data/ --dry-run")
	fmt.Println("  seeder nuke")
	fmt.Println("  seeder nuke --force")
}
