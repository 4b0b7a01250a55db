package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"menu-planner/internal/app"
	"menu-planner/internal/auth"
	"menu-planner/internal/catalog"
	"menu-planner/internal/config"
	"menu-planner/internal/database"
	"menu-planner/internal/logger"
	"menu-planner/internal/model"
	"menu-planner/internal/planner"
	"menu-planner/internal/remote"
	"menu-planner/internal/store"
	"menu-planner/internal/syncer"
)

func main() {
	ctx := context.Background()
	log := logger.NewDevelopment()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	local := store.NewSQLiteStore(db.SQL, log)

	// No MONGO_URI means a fully offline session; the reconciler then skips
	// every remote operation.
	var remoteStore remote.Store
	if cfg.MongoURI != "" {
		mongoStore, err := remote.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.RemoteTimeout, log)
		if err != nil {
			log.Warnw("remote store unreachable, continuing offline", "error", err)
		} else {
			defer mongoStore.Close(ctx)
			remoteStore = mongoStore
		}
	}

	var authenticator auth.Authenticator
	if cfg.AuthURL != "" {
		authenticator = auth.NewClient(cfg.AuthURL, cfg.AuthSecret)
	} else {
		authenticator = auth.Static{}
	}

	reconciler := syncer.NewReconciler(local, remoteStore, catalog.Seed(), log)
	composer := planner.NewComposer(local, rand.New(rand.NewSource(time.Now().UnixNano())), log)
	application := app.New(local, reconciler, composer, authenticator, log)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "login":
		cmd := flag.NewFlagSet("login", flag.ExitOnError)
		email := cmd.String("email", "", "Account email")
		password := cmd.String("password", "", "Account password")
		cmd.Parse(os.Args[2:])

		user, err := application.Login(ctx, *email, *password)
		if err != nil {
			log.Fatalf("Login failed: %v", err)
		}
		fmt.Printf("Logged in as %s (%s)\n", user.Name, user.ID)

	case "generate":
		cmd := flag.NewFlagSet("generate", flag.ExitOnError)
		userID := cmd.String("user", "", "User id")
		cmd.Parse(os.Args[2:])

		plan, err := application.GenerateWeeklyMenu(ctx, *userID)
		if err != nil {
			log.Fatalf("Menu generation failed: %v", err)
		}
		printPlan(ctx, local, plan)

	case "profile":
		cmd := flag.NewFlagSet("profile", flag.ExitOnError)
		userID := cmd.String("user", "", "User id")
		name := cmd.String("name", "", "Full name")
		email := cmd.String("email", "", "Email")
		age := cmd.Int("age", 0, "Age in years")
		weight := cmd.Float64("weight", 0, "Weight in kg")
		height := cmd.Float64("height", 0, "Height in cm")
		goal := cmd.String("goal", string(model.GoalMaintain), "Goal: lose, maintain or gain")
		cmd.Parse(os.Args[2:])

		u := model.User{
			ID:       *userID,
			Name:     *name,
			Email:    *email,
			Age:      *age,
			WeightKg: *weight,
			HeightCm: *height,
			Goal:     model.Goal(*goal),
		}
		if err := application.UpdateProfile(ctx, u); err != nil {
			log.Fatalf("Profile update failed: %v", err)
		}
		fmt.Printf("Profile saved. BMI: %.1f\n", u.BMI())

	case "plan":
		cmd := flag.NewFlagSet("plan", flag.ExitOnError)
		userID := cmd.String("user", "", "User id")
		cmd.Parse(os.Args[2:])

		plan, err := application.ActivePlan(ctx, *userID)
		if err != nil {
			log.Fatalf("Failed to load active plan: %v", err)
		}
		if plan == nil {
			fmt.Println("No active plan. Run 'generate' first.")
			return
		}
		printPlan(ctx, local, plan)

	case "plans":
		cmd := flag.NewFlagSet("plans", flag.ExitOnError)
		userID := cmd.String("user", "", "User id")
		cmd.Parse(os.Args[2:])

		plans, err := application.Plans(ctx, *userID)
		if err != nil {
			log.Fatalf("Failed to list plans: %v", err)
		}
		if len(plans) == 0 {
			fmt.Println("No plans yet. Run 'generate' first.")
			return
		}
		for _, p := range plans {
			marker := " "
			if p.Active {
				marker = "*"
			}
			fav := ""
			if p.Favorite {
				fav = " (favorite)"
			}
			fmt.Printf("%s %4d  %s  %s - %s%s\n", marker, p.ID, p.Name,
				p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"), fav)
		}

	case "favorite":
		cmd := flag.NewFlagSet("favorite", flag.ExitOnError)
		planID := cmd.Int64("plan", 0, "Plan id")
		off := cmd.Bool("off", false, "Clear the favorite flag instead")
		cmd.Parse(os.Args[2:])

		if err := application.SetPlanFavorite(ctx, *planID, !*off); err != nil {
			log.Fatalf("Failed to update favorite flag: %v", err)
		}

	case "delete-plan":
		cmd := flag.NewFlagSet("delete-plan", flag.ExitOnError)
		planID := cmd.Int64("plan", 0, "Plan id")
		cmd.Parse(os.Args[2:])

		if err := application.DeletePlan(ctx, *planID); err != nil {
			log.Fatalf("Failed to delete plan: %v", err)
		}
		fmt.Println("Plan deleted.")

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func printPlan(ctx context.Context, local store.LocalStore, plan *model.MenuPlan) {
	names := make(map[int64]string)
	if recipes, err := local.GetRecipesByIDs(ctx, plan.RecipeIDs()); err == nil {
		for _, rec := range recipes {
			names[rec.ID] = rec.Name
		}
	}

	fmt.Printf("\n=== %s ===\n", plan.Name)
	for day, slot := range plan.Days {
		fmt.Printf("% -10s:", dayNames[day])
		for _, id := range slot.RecipeIDs {
			name := names[id]
			if name == "" {
				name = fmt.Sprintf("recipe %d", id)
			}
			fmt.Printf(" | %s", name)
		}
		fmt.Println()
	}
	fmt.Printf("\nTotal calories: %d (avg %d/day)\n", plan.TotalCalories, plan.AverageDailyCalories)
	fmt.Printf("Total cost: %s (avg %s/day)\n", plan.TotalCost.StringFixed(2), plan.AverageDailyCost.StringFixed(2))
}

func printUsage() {
	fmt.Println("Usage: menu-planner <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  login        Authenticate and sync the local cache")
	fmt.Println("  profile      Create or update a user profile")
	fmt.Println("  generate     Compose this week's menu")
	fmt.Println("  plan         Show the active plan")
	fmt.Println("  plans        List all stored plans")
	fmt.Println("  favorite     Mark or unmark a plan as favorite")
	fmt.Println("  delete-plan  Delete a plan locally and remotely")
}
