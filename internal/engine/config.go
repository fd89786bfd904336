package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"spectral-server/internal/domain"
	"spectral-server/pkg/api"
)

// Config хранит параметры запуска симуляции.
type Config struct {
	// Seed - мастер-зерно прогона. Генераторы акторов выводятся из него
	// и имени актора, общего состояния рандома между горутинами нет.
	Seed int64

	// HunterCount - число охотников. Не больше числа типов улик:
	// снаряжение назначается уникально.
	HunterCount int

	// HunterNames - отображаемые имена охотников (внешний источник имен).
	HunterNames []string

	// FearMax и BoredomMax - пороги выхода.
	FearMax    int
	BoredomMax int

	// EvidenceGoal - емкость общей коллекции улик и условие победы охотников.
	EvidenceGoal int

	// GhostWait и HunterWait - паузы между тиками. Призрак тикает
	// заметно чаще охотников, это осознанный перекос.
	GhostWait  time.Duration
	HunterWait time.Duration

	// BroadcastSufficient управляет спорным местом оригинальных правил:
	// true - охотник, увидевший полный набор улик, останавливает всех;
	// false - выходит только он сам.
	BroadcastSufficient bool

	// JournalDir - куда складывать журналы прогонов.
	JournalDir string
}

// NewConfig создает конфиг по умолчанию (случайное зерно, константы оригинала).
func NewConfig() Config {
	return Config{
		Seed:                time.Now().UnixNano(),
		HunterCount:         4,
		HunterNames:         []string{"Alex", "Morgan", "Riley", "Quinn"},
		FearMax:             10,
		BoredomMax:          100,
		EvidenceGoal:        3,
		GhostWait:           600 * time.Microsecond,
		HunterWait:          5 * time.Millisecond,
		BroadcastSufficient: true,
		JournalDir:          "journals",
	}
}

// fileConfig - сырой вид TOML-файла. Применяются только заданные ключи.
type fileConfig struct {
	Seed                int64    `toml:"seed"`
	Hunters             int      `toml:"hunters"`
	HunterNames         []string `toml:"hunter_names"`
	FearMax             int      `toml:"fear_max"`
	BoredomMax          int      `toml:"boredom_max"`
	EvidenceGoal        int      `toml:"evidence_goal"`
	GhostWait           string   `toml:"ghost_wait"`
	HunterWait          string   `toml:"hunter_wait"`
	BroadcastSufficient bool     `toml:"broadcast_on_sufficient"`
	JournalDir          string   `toml:"journal_dir"`
}

// ApplyFile накладывает значения из TOML-файла поверх текущих.
func (c *Config) ApplyFile(path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load simulation config: %w", err)
	}

	if meta.IsDefined("seed") {
		c.Seed = raw.Seed
	}
	if meta.IsDefined("hunters") {
		c.HunterCount = raw.Hunters
	}
	if meta.IsDefined("hunter_names") {
		names := make([]string, 0, len(raw.HunterNames))
		for _, n := range raw.HunterNames {
			n = strings.TrimSpace(n)
			if n != "" {
				names = append(names, n)
			}
		}
		c.HunterNames = names
	}
	if meta.IsDefined("fear_max") {
		c.FearMax = raw.FearMax
	}
	if meta.IsDefined("boredom_max") {
		c.BoredomMax = raw.BoredomMax
	}
	if meta.IsDefined("evidence_goal") {
		c.EvidenceGoal = raw.EvidenceGoal
	}
	if meta.IsDefined("ghost_wait") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.GhostWait))
		if err != nil {
			return fmt.Errorf("parse ghost_wait: %w", err)
		}
		c.GhostWait = d
	}
	if meta.IsDefined("hunter_wait") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.HunterWait))
		if err != nil {
			return fmt.Errorf("parse hunter_wait: %w", err)
		}
		c.HunterWait = d
	}
	if meta.IsDefined("broadcast_on_sufficient") {
		c.BroadcastSufficient = raw.BroadcastSufficient
	}
	if meta.IsDefined("journal_dir") {
		c.JournalDir = strings.TrimSpace(raw.JournalDir)
	}

	return nil
}

// Validate проверяет согласованность параметров перед стартом.
func (c Config) Validate() error {
	if c.HunterCount <= 0 {
		return fmt.Errorf("hunter count must be positive, got %d", c.HunterCount)
	}
	if c.HunterCount > int(domain.EvidenceKindCount) {
		return fmt.Errorf("hunter count %d exceeds distinct equipment kinds (%d)",
			c.HunterCount, domain.EvidenceKindCount)
	}
	if c.FearMax <= 0 || c.BoredomMax <= 0 {
		return fmt.Errorf("fear/boredom maxima must be positive")
	}
	if c.EvidenceGoal <= 0 || c.EvidenceGoal > int(domain.EvidenceKindCount) {
		return fmt.Errorf("evidence goal must be in 1..%d, got %d",
			domain.EvidenceKindCount, c.EvidenceGoal)
	}
	if c.GhostWait <= 0 || c.HunterWait <= 0 {
		return fmt.Errorf("tick intervals must be positive")
	}
	for _, name := range c.HunterNames {
		if err := api.ValidateName(name); err != nil {
			return fmt.Errorf("hunter name %q: %w", name, err)
		}
	}
	return nil
}
