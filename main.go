package main

import (
	"log"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"minicart/config"
	"minicart/gateway"
	"minicart/loader"
	"minicart/session"
)

func main() {
	log.Println("Connecting to database...")
	dbConn, err := sqlx.Open("sqlite3", "./minicart.db?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	defer dbConn.Close()
	log.Println("Database connection successful.")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("WARN: Failed to load config file: %v. Using defaults.", err)
		cfg = config.Defaults()
	}

	if err := loader.InitDatabase(dbConn); err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}
	log.Println("Database initialization complete.")

	sessions := session.NewSQLStore(dbConn)

	nav := gateway.NavigatorFunc(func(target string) {
		log.Printf("Session rejected by backend; UI redirected to %s", target)
	})
	gw := gateway.New(
		cfg.BackendBaseURL,
		time.Duration(cfg.RequestTimeoutSeconds)*time.Second,
		sessions,
		gateway.DefaultPolicy(),
		nav,
	)
	log.Printf("Backend gateway ready (%s).", cfg.BackendBaseURL)

	mux := http.NewServeMux()

	if _, err := os.Stat("static"); err == nil {
		mux.Handle("/static/", http.StripPrefix("/static/",
			http.FileServer(http.Dir("./static"))))
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/" {
				http.NotFound(w, r)
				return
			}
			http.ServeFile(w, r, "./static/index.html")
		})
	} else {
		log.Println("WARN: 'static' directory not found. Serving API only.")
	}

	SetupRoutes(mux, gw, sessions)

	port := ":8080"
	log.Printf("Starting storefront on http://localhost%s", port)

	openBrowser("http://localhost:8080")

	if err := http.ListenAndServe(port, mux); err != nil {
		log.Fatalf("server start error: %v", err)
	}
}

func openBrowser(url string) {
	var err error
	switch runtime.GOOS {
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		err = exec.Command("open", url).Start()
	default:
		err = exec.Command("xdg-open", url).Start()
	}
	if err != nil {
		log.Printf("failed to open browser: %v", err)
	}
}
