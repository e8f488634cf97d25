package catalog

import (
	"context"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/StrideShop_Go/internal/domain"
	"github.com/osse101/StrideShop_Go/internal/logger"
	"github.com/osse101/StrideShop_Go/internal/repository"
	"github.com/osse101/StrideShop_Go/internal/validation"
)

//go:embed schema/catalog.schema.json
var catalogSchema []byte

// Sentinel errors for the catalog loader
var (
	ErrDuplicateItemID = errors.New("duplicate item id")
	ErrInvalidConfig   = errors.New("invalid configuration")
)

// Config is the JSON catalog file
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
	Items       []Def  `json:"items"`
}

// Def is a single item definition
type Def struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	SellPrice   int    `json:"sell_price"`
}

// ToDomain converts the definition into a catalog item
func (d Def) ToDomain() domain.CatalogItem {
	return domain.CatalogItem{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		SellPrice:   d.SellPrice,
	}
}

// Loader handles loading, validating and syncing the catalog config
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToDatabase(ctx context.Context, config *Config, repo repository.Catalog, configPath string) (*SyncResult, error)
}

// SyncResult contains the result of syncing the catalog to the database
type SyncResult struct {
	Changed   bool `json:"changed"`
	ItemCount int  `json:"item_count"`
	Inserted  int  `json:"inserted"`
	Updated   int  `json:"updated"`
	Skipped   int  `json:"skipped"`
}

type loader struct {
	schemaValidator validation.SchemaValidator
	titler          cases.Caser
}

// NewLoader creates a Loader with the embedded catalog schema registered
func NewLoader() (Loader, error) {
	v := validation.NewSchemaValidator()
	if err := v.Register(SchemaName, catalogSchema); err != nil {
		return nil, fmt.Errorf(ErrMsgRegisterSchemaFailed, err)
	}
	return &loader{
		schemaValidator: v,
		titler:          cases.Title(language.English),
	}, nil
}

// Load reads, schema-checks and parses a catalog file
func (l *loader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, SchemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailedFmt, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks semantic rules the schema cannot express and fills in
// display names derived from ids. An empty item list is valid.
func (l *loader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	seen := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		def := &config.Items[i]

		if strings.TrimSpace(def.ID) == "" {
			return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidConfig, i)
		}
		if seen[def.ID] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateItemID, def.ID)
		}
		seen[def.ID] = true

		if def.SellPrice < 0 {
			return fmt.Errorf(ErrFmtItemNegativePrice, ErrInvalidConfig, def.ID)
		}
		if def.Name == "" {
			def.Name = l.displayName(def.ID)
		}
	}

	return nil
}

// displayName turns "health_potion" into "Health Potion"
func (l *loader) displayName(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool { return r == '_' || r == '-' })
	return l.titler.String(strings.Join(words, " "))
}

// SyncToDatabase upserts the catalog when the file changed since the last sync
func (l *loader) SyncToDatabase(ctx context.Context, config *Config, repo repository.Catalog, configPath string) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	fileHash, modTime, err := fileFingerprint(configPath)
	if err != nil {
		return nil, err
	}

	changed, err := hasFileChanged(ctx, repo, fileHash, modTime)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCheckFileChangeFailed, err)
	}
	if !changed {
		log.Info(LogMsgConfigUnchanged, "path", configPath)
		return &SyncResult{ItemCount: len(config.Items)}, nil
	}

	existing, err := repo.ListSellableItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetExistingItemsFailed, err)
	}
	byID := make(map[string]domain.CatalogItem, len(existing))
	for _, item := range existing {
		byID[item.ID] = item
	}

	result := &SyncResult{Changed: true, ItemCount: len(config.Items)}
	for _, def := range config.Items {
		item := def.ToDomain()
		if current, ok := byID[item.ID]; ok && current == item {
			result.Skipped++
			continue
		}

		inserted, err := repo.UpsertItem(ctx, item)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertItemFailed, item.ID, err)
		}
		if inserted {
			result.Inserted++
			log.Info(LogMsgInsertedItem, "item_id", item.ID)
		} else {
			result.Updated++
			log.Info(LogMsgUpdatedItem, "item_id", item.ID)
		}
	}

	meta := &domain.SyncMetadata{
		ConfigName:   ConfigFileName,
		LastSyncTime: time.Now().UTC(),
		FileHash:     fileHash,
		FileModTime:  modTime,
	}
	if err := repo.UpsertSyncMetadata(ctx, meta); err != nil {
		log.Warn(LogMsgUpdateMetadataFailed, "error", err)
	}

	log.Info(LogMsgSyncCompleted,
		"inserted", result.Inserted,
		"updated", result.Updated,
		"skipped", result.Skipped)

	return result, nil
}

func hasFileChanged(ctx context.Context, repo repository.Catalog, fileHash string, modTime time.Time) (bool, error) {
	meta, err := repo.GetSyncMetadata(ctx, ConfigFileName)
	if err != nil {
		// First sync - no metadata exists
		return true, nil
	}
	return meta.FileHash != fileHash || !meta.FileModTime.Equal(modTime), nil
}

func fileFingerprint(path string) (string, time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", time.Time{}, fmt.Errorf(ErrMsgStatConfigFileFailed, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", time.Time{}, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), info.ModTime().UTC().Truncate(time.Microsecond), nil
}
