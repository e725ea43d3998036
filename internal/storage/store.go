package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/GerhardMe/spacetime/internal/config"
	"github.com/GerhardMe/spacetime/internal/diagram"
	"github.com/GerhardMe/spacetime/internal/relativity"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type SceneMetadata struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
	Objects   int       `json:"objects"`
	FrameMode string    `json:"frame_mode"`
	FrameV    float64   `json:"frame_v"`
}

// Save writes one scene directory: scene.yaml (reloadable config),
// metadata.json and traces.csv with the diagram's line endpoints.
func (s *Store) Save(title string, cfg *config.Config, d *diagram.Diagram) (string, error) {
	id := fmt.Sprintf("%s_%d", slug(title), time.Now().Unix())
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	if err := config.Save(filepath.Join(dir, "scene.yaml"), cfg); err != nil {
		return "", err
	}

	mode := cfg.Frame.Mode
	if mode == "" {
		mode = "lab"
	}
	meta := SceneMetadata{
		ID:        id,
		Title:     title,
		Timestamp: time.Now(),
		Objects:   len(cfg.Objects),
		FrameMode: mode,
		FrameV:    d.Frame.V,
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := writeTraces(filepath.Join(dir, "traces.csv"), d); err != nil {
		return "", err
	}

	return id, nil
}

func writeTraces(path string, d *diagram.Diagram) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"object", "kind", "x", "t"}); err != nil {
		return err
	}

	emit := func(name, kind string, events []relativity.Event) error {
		for _, e := range events {
			row := []string{
				name,
				kind,
				strconv.FormatFloat(e.X, 'f', 6, 64),
				strconv.FormatFloat(e.T, 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}

	for _, tr := range d.Objects {
		name := tr.Object.Name
		if err := emit(name, "world", tr.World); err != nil {
			return err
		}
		if err := emit(name, "cone_left", tr.ConeLeft); err != nil {
			return err
		}
		if err := emit(name, "cone_right", tr.ConeRight); err != nil {
			return err
		}
		if err := emit(name, "simultaneity", tr.Simultaneity); err != nil {
			return err
		}
		if err := emit(name, "tick", tr.Ticks); err != nil {
			return err
		}
	}
	if err := emit("", "observer", d.Observer); err != nil {
		return err
	}
	if err := emit("", "present", d.Present); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

// List returns metadata for every readable scene, skipping entries
// with missing or corrupt metadata.
func (s *Store) List() ([]SceneMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SceneMetadata{}, nil
		}
		return nil, err
	}

	scenes := make([]SceneMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta SceneMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		scenes = append(scenes, meta)
	}

	return scenes, nil
}

func (s *Store) LoadConfig(id string) (*config.Config, error) {
	return config.Load(filepath.Join(s.baseDir, id, "scene.yaml"))
}

func slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
		} else if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimRight(b.String(), "-")
	if out == "" {
		return "scene"
	}
	return out
}
