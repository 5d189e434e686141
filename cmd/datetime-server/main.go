package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-datetimefield/components/datetimepicker"
	"github.com/goliatone/go-datetimefield/pkg/datetime"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	base := flag.String("base", "/", "base path for the picker route")
	config := flag.String("config", "", "picker options file (JSON or YAML)")
	utc := flag.Bool("utc", false, "report times in UTC instead of local time")
	flag.Parse()

	fns := []datetimepicker.OptionFn{}
	if *config != "" {
		opts, err := datetime.LoadOptionsFile(*config)
		if err != nil {
			log.Fatalf("load picker options: %v", err)
		}
		fns = append(fns, datetimepicker.WithPickerOptions(datetime.WithOptions(opts)))
	}
	if *utc {
		fns = append(fns, datetimepicker.WithLocation(time.UTC))
	}

	mux := http.NewServeMux()
	pattern, err := datetimepicker.New(fns...).RegisterRoutes(mux, *base)
	if err != nil {
		log.Fatalf("register routes: %v", err)
	}

	log.Printf("datetime picker listening on %s%s", *addr, pattern)
	srv := &http.Server{
		Addr:              *addr,
		Handler:           logRequests(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s (%s)", id, r.Method, r.URL.Path, time.Since(start).Round(time.Microsecond))
	})
}
