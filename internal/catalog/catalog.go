// Package catalog contém o catálogo fixo de controles de segurança usado pelo motor de risco.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"phoenixgrc/riskmatrix/internal/models"

	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrEmptyCatalog indica um catálogo sem controles. Deve ser tratado como erro de configuração na inicialização.
	ErrEmptyCatalog = errors.New("control catalog is empty")
	// ErrDuplicateControl indica dois controles com o mesmo identificador.
	ErrDuplicateControl = errors.New("duplicate control id")
	// ErrInvalidControl indica um controle sem identificador.
	ErrInvalidControl = errors.New("invalid control")
)

//go:embed iso27001.toml
var iso27001Data []byte

// Catalog é um mapeamento imutável de identificador para Control.
// Mantém a ordem de definição para exibição.
type Catalog struct {
	scenario string
	order    []models.ControlID
	controls map[models.ControlID]models.Control
}

// New cria um catálogo a partir de uma lista de controles.
// Um catálogo vazio é aceito aqui; use Validate para tratá-lo como erro de configuração.
func New(scenario string, controls []models.Control) (*Catalog, error) {
	c := &Catalog{
		scenario: scenario,
		order:    make([]models.ControlID, 0, len(controls)),
		controls: make(map[models.ControlID]models.Control, len(controls)),
	}
	for _, ctrl := range controls {
		if strings.TrimSpace(string(ctrl.ID)) == "" {
			return nil, fmt.Errorf("%w: empty id (name %q)", ErrInvalidControl, ctrl.Name)
		}
		if _, exists := c.controls[ctrl.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateControl, ctrl.ID)
		}
		c.controls[ctrl.ID] = ctrl
		c.order = append(c.order, ctrl.ID)
	}
	return c, nil
}

// catalogFile espelha o formato do arquivo TOML embutido.
type catalogFile struct {
	Scenario string           `toml:"scenario"`
	Controls []models.Control `toml:"controls"`
}

// Parse decodifica um catálogo no formato TOML.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode control catalog: %w", err)
	}
	return New(f.Scenario, f.Controls)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Load retorna o catálogo ISO 27001 embutido. É carregado uma única vez por processo.
func Load() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(iso27001Data)
	})
	return defaultCatalog, defaultErr
}

// Default retorna o catálogo embutido e entra em pânico se ele não puder ser decodificado,
// o que só acontece se o arquivo embutido estiver corrompido.
func Default() *Catalog {
	c, err := Load()
	if err != nil {
		panic(fmt.Sprintf("embedded control catalog is invalid: %v", err))
	}
	return c
}

// Validate reporta ErrEmptyCatalog quando não há controles.
func (c *Catalog) Validate() error {
	if c == nil || len(c.order) == 0 {
		return ErrEmptyCatalog
	}
	return nil
}

// Scenario retorna o título do cenário de risco avaliado.
func (c *Catalog) Scenario() string {
	return c.scenario
}

// Get busca um controle pelo identificador.
func (c *Catalog) Get(id models.ControlID) (models.Control, bool) {
	ctrl, ok := c.controls[id]
	return ctrl, ok
}

// Len retorna a quantidade de controles.
func (c *Catalog) Len() int {
	return len(c.order)
}

// IDs retorna os identificadores na ordem do catálogo. O slice retornado é uma cópia.
func (c *Catalog) IDs() []models.ControlID {
	out := make([]models.ControlID, len(c.order))
	copy(out, c.order)
	return out
}

// Controls retorna os controles na ordem do catálogo.
func (c *Catalog) Controls() []models.Control {
	out := make([]models.Control, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.controls[id])
	}
	return out
}

// Selected retorna os controles da seleção na ordem do catálogo, ignorando identificadores desconhecidos.
func (c *Catalog) Selected(sel models.Selection) []models.Control {
	out := make([]models.Control, 0, len(sel))
	for _, id := range c.order {
		if sel.Has(id) {
			out = append(out, c.controls[id])
		}
	}
	return out
}
