// Package config reads viewer settings from the environment. Callers load .env
// files with godotenv before calling Load.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the polygon layer and popup settings.
type Config struct {
	LogFile     string
	MetricsAddr string

	MinPopupArea float64
	Animate      bool

	LineJoin   string
	MiterLimit string

	FillColor   string
	StrokeColor string
	StrokeWidth float64

	FillColorAttr   string
	FillColorRange  [2]string
	StrokeColorAttr string
	StrokeWidthAttr string

	PopupFill        string
	PopupStroke      string
	PopupStrokeWidth *float64
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		MinPopupArea:   2000,
		Animate:        true,
		LineJoin:       "miter",
		MiterLimit:     "10",
		FillColor:      "#22a7f0",
		StrokeColor:    "#ffffff",
		FillColorRange: [2]string{"#115f9a", "#d0f400"},
	}
}

// LoadDotEnv loads the .env files the viewer looks for. Missing files are fine.
func LoadDotEnv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("data/env/.env")
}

// Load reads the environment on top of Defaults. Numeric values that fail to
// parse keep their default.
func Load() Config {
	c := Defaults()
	c.LogFile = os.Getenv("LOG_FILE")
	c.MetricsAddr = os.Getenv("METRICS_ADDR")
	c.MinPopupArea = envFloat("MIN_POPUP_AREA", c.MinPopupArea)
	if v := os.Getenv("POPUP_ANIMATE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Animate = b
		}
	}
	// line join and miter limit are validated by the layer, keep them raw
	c.LineJoin = envString("LINE_JOIN", c.LineJoin)
	c.MiterLimit = envString("MITER_LIMIT", c.MiterLimit)
	c.FillColor = envString("FILL_COLOR", c.FillColor)
	c.StrokeColor = envString("STROKE_COLOR", c.StrokeColor)
	c.StrokeWidth = envFloat("STROKE_WIDTH", c.StrokeWidth)
	c.FillColorAttr = os.Getenv("FILL_COLOR_ATTR")
	if v := os.Getenv("FILL_COLOR_RANGE"); v != "" {
		parts := strings.Split(v, ",")
		if len(parts) == 2 {
			c.FillColorRange = [2]string{strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])}
		}
	}
	c.StrokeColorAttr = os.Getenv("STROKE_COLOR_ATTR")
	c.StrokeWidthAttr = os.Getenv("STROKE_WIDTH_ATTR")
	c.PopupFill = os.Getenv("POPUP_FILL")
	c.PopupStroke = os.Getenv("POPUP_STROKE")
	if v := strings.TrimSpace(os.Getenv("POPUP_STROKE_WIDTH")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.PopupStrokeWidth = &f
		}
	}
	return c
}

// HasPopupStyle reports whether any popup override is configured.
func (c Config) HasPopupStyle() bool {
	return c.PopupFill != "" || c.PopupStroke != "" || c.PopupStrokeWidth != nil
}

// MiterLimitValue parses MiterLimit. Unparseable input is returned as the raw
// string so the layer rejects it with a validation error.
func (c Config) MiterLimitValue() any {
	f, err := strconv.ParseFloat(strings.TrimSpace(c.MiterLimit), 64)
	if err != nil {
		return c.MiterLimit
	}
	return f
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
