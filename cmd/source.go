package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid"

	"github.com/silinternational/inspection-api/api"
	"github.com/silinternational/inspection-api/damage"
	"github.com/silinternational/inspection-api/domain"
	"github.com/silinternational/inspection-api/models"
)

// source is where an inspection record is read from and saved to: a JSON file or a database row
type source struct {
	file  string
	id    uuid.UUID
	store models.InspectionStore
}

// openSource interprets arg as an inspection ID when it parses as one and as a file name otherwise. An ID
// requires a database connection.
func openSource(arg string) (source, error) {
	id, err := uuid.FromString(arg)
	if err != nil {
		return source{file: arg}, nil
	}

	if models.DB == nil {
		if err := models.Connect(domain.Env.GoEnv); err != nil {
			return source{}, err
		}
	}
	return source{id: id}, nil
}

func (s source) isDB() bool {
	return s.id != uuid.Nil
}

func (s source) load(ctx context.Context) (api.InspectionDamage, error) {
	if s.isDB() {
		return s.store.LoadInspectionDamage(ctx, s.id)
	}
	return readInspectionFile(s.file)
}

// SaveInspectionDamage writes the whole record back to the source
func (s source) SaveInspectionDamage(ctx context.Context, inspection api.InspectionDamage) error {
	if s.isDB() {
		return s.store.SaveInspectionDamage(ctx, inspection)
	}
	return writeInspectionFile(s.file, inspection)
}

// savePart saves the part open in the session. Database records go through the store so that the change is
// announced to the listeners.
func (s source) savePart(ctx context.Context, session *damage.Session) (api.PartDamage, error) {
	if s.isDB() {
		return s.store.SavePart(ctx, session)
	}
	return session.Save(ctx, s)
}

func (s source) resetPart(ctx context.Context, session *damage.Session, key api.PartKey) error {
	if s.isDB() {
		return s.store.ResetPart(ctx, session, key)
	}
	_, err := session.Reset(ctx, key, s)
	return err
}

func readInspectionFile(name string) (api.InspectionDamage, error) {
	var inspection api.InspectionDamage

	content, err := os.ReadFile(name)
	if err != nil {
		return inspection, fmt.Errorf("error reading inspection file %s: %w", name, err)
	}
	if err := json.Unmarshal(content, &inspection); err != nil {
		err = fmt.Errorf("error decoding inspection file %s: %w", name, err)
		return inspection, api.NewAppError(err, api.ErrorInspectionInvalidInput, api.CategoryUser)
	}
	return inspection, nil
}

// writeInspectionFile replaces the file through a rename so that a failed write leaves the old content in place
func writeInspectionFile(name string, inspection api.InspectionDamage) error {
	content, err := json.MarshalIndent(inspection, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding inspection: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(name), filepath.Base(name)+".*")
	if err != nil {
		return fmt.Errorf("error creating temporary file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(append(content, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("error writing inspection file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error writing inspection file: %w", err)
	}
	return os.Rename(tmp.Name(), name)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
