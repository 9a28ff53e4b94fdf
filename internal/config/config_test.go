package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_DefaultValues(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Database.Host != "localhost" {
		t.Errorf("Expected DB_HOST default 'localhost', got '%s'", cfg.Database.Host)
	}
	if cfg.Database.Port != "5432" {
		t.Errorf("Expected DB_PORT default '5432', got '%s'", cfg.Database.Port)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected PORT default '8080', got '%s'", cfg.Port)
	}
	if cfg.GalleryDir != "gallery" {
		t.Errorf("Expected GALLERY_DIR default 'gallery', got '%s'", cfg.GalleryDir)
	}
	if cfg.BlogDir != "." {
		t.Errorf("Expected BLOG_DIR default '.', got '%s'", cfg.BlogDir)
	}
	if cfg.MaxUploadBytes != 16<<20 {
		t.Errorf("Expected default upload cap of 16MB, got %d", cfg.MaxUploadBytes)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("Expected default session TTL of 24h, got %v", cfg.SessionTTL)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("Expected 2 default CORS origins, got %d", len(cfg.CORSOrigins))
	}
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	os.Setenv("DB_HOST", "test-host")
	os.Setenv("DB_NAME", "test-db")
	os.Setenv("PORT", "9090")
	os.Setenv("GALLERY_DIR", "/tmp/test-gallery")
	os.Setenv("MAX_UPLOAD_MB", "4")
	os.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	defer func() {
		os.Unsetenv("DB_HOST")
		os.Unsetenv("DB_NAME")
		os.Unsetenv("PORT")
		os.Unsetenv("GALLERY_DIR")
		os.Unsetenv("MAX_UPLOAD_MB")
		os.Unsetenv("CORS_ALLOWED_ORIGINS")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Database.Host != "test-host" {
		t.Errorf("Expected DB_HOST 'test-host', got '%s'", cfg.Database.Host)
	}
	if cfg.Database.Name != "test-db" {
		t.Errorf("Expected DB_NAME 'test-db', got '%s'", cfg.Database.Name)
	}
	if cfg.Port != "9090" {
		t.Errorf("Expected PORT '9090', got '%s'", cfg.Port)
	}
	if cfg.GalleryDir != "/tmp/test-gallery" {
		t.Errorf("Expected GALLERY_DIR '/tmp/test-gallery', got '%s'", cfg.GalleryDir)
	}
	if cfg.MaxUploadBytes != 4<<20 {
		t.Errorf("Expected upload cap of 4MB, got %d", cfg.MaxUploadBytes)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "https://a.example.com" {
		t.Errorf("Expected parsed CORS origins, got %v", cfg.CORSOrigins)
	}
}

func TestLoad_DefaultCredentialTable(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	op, ok := cfg.Credentials["admin"]
	if !ok {
		t.Fatal("Expected default credential table to contain 'admin'")
	}
	if op.Role != "Foundation Director" {
		t.Errorf("Expected admin role 'Foundation Director', got '%s'", op.Role)
	}
	if len(cfg.Credentials) != 4 {
		t.Errorf("Expected 4 default operators, got %d", len(cfg.Credentials))
	}
}
