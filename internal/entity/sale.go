package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrSaleNotFound = errors.New("venda não encontrada")

// Stage é a posição da venda no pipeline comercial.
type Stage string

const (
	StageProspeccao          Stage = "prospecção"
	StageApresentadaProposta Stage = "apresentada proposta"
	StageNegociar            Stage = "negociar"
	StageFecharProposta      Stage = "fechar proposta"
	StageFinalizado          Stage = "finalizado"
	StagePosVenda            Stage = "pós venda"
	StageVisitaManutencao    Stage = "visita manutenção"
	StageRenegociarContrato  Stage = "renegociar contrato"
	StagePerdida             Stage = "perdida"
)

// stageLegacyFechado é o sinônimo antigo de "finalizado" que ainda existe
// em registros gravados por versões anteriores do sistema.
const stageLegacyFechado = "fechado"

var knownStages = map[Stage]string{
	StageProspeccao:          "Prospecção",
	StageApresentadaProposta: "Apresentada Proposta",
	StageNegociar:            "Negociar",
	StageFecharProposta:      "Fechar Proposta",
	StageFinalizado:          "Finalizado",
	StagePosVenda:            "Pós Venda",
	StageVisitaManutencao:    "Visita Manutenção",
	StageRenegociarContrato:  "Renegociar Contrato",
	StagePerdida:             "Perdida",
}

// NormalizeStage converte o valor bruto gravado no banco para o enum atual.
// O sinônimo legado "fechado" nunca passa desta fronteira.
func NormalizeStage(raw string) Stage {
	if raw == stageLegacyFechado {
		return StageFinalizado
	}
	return Stage(raw)
}

func (s Stage) Known() bool {
	_, ok := knownStages[s]
	return ok
}

// Label retorna o rótulo de exibição do estágio. Valores desconhecidos
// passam direto, para que um registro antigo nunca quebre uma listagem.
func (s Stage) Label() string {
	if label, ok := knownStages[s]; ok {
		return label
	}
	return string(s)
}

// Métodos de contato aceitos no formulário de venda.
const (
	ContactPresencial = "presencial"
	ContactTelefone   = "telefone"
	ContactEmail      = "email"
	ContactWhatsApp   = "whatsapp"
)

func ValidContactMethod(m string) bool {
	switch m {
	case ContactPresencial, ContactTelefone, ContactEmail, ContactWhatsApp:
		return true
	}
	return false
}

// Sale é a entidade central do pipeline.
type Sale struct {
	ID            string `bson:"_id" json:"id"`
	Date          string `bson:"date" json:"date"` // DD/MM/YYYY
	CompanyName   string `bson:"company_name" json:"companyName"`
	ContactName   string `bson:"contact_name" json:"contactName"`
	ContactMethod string `bson:"contact_method" json:"contactMethod"`
	Stage         Stage  `bson:"stage" json:"stage"`
	ProductType   string `bson:"product_type" json:"productType"`
	Type          string `bson:"type,omitempty" json:"type,omitempty"`

	// SalesPerson é quem cadastrou; Vendedor é o responsável pela conta.
	// Podem divergir quando um admin cadastra em nome de outro vendedor.
	SalesPerson string `bson:"sales_person" json:"salesPerson"`
	Vendedor    string `bson:"vendedor" json:"vendedor"`

	Comments string `bson:"comments,omitempty" json:"comments,omitempty"`
	Lifes    int    `bson:"lifes,omitempty" json:"lifes,omitempty"`
	CNPJ     string `bson:"cnpj,omitempty" json:"cnpj,omitempty"`

	// StatusFechado é um override manual de "cliente ativo", independente
	// do estágio. Só o classificador de clientes consome este campo.
	StatusFechado bool `bson:"status_fechado" json:"statusFechado"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// NewSale monta uma venda nova com ID e timestamps.
func NewSale(date, companyName, contactName, contactMethod string, stage Stage, productType, vendedor, salesPerson string) (*Sale, error) {
	sale := &Sale{
		ID:            uuid.New().String(),
		Date:          date,
		CompanyName:   companyName,
		ContactName:   contactName,
		ContactMethod: contactMethod,
		Stage:         stage,
		ProductType:   productType,
		SalesPerson:   salesPerson,
		Vendedor:      vendedor,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	sale.Normalize()

	if err := sale.Validate(); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *Sale) Validate() error {
	if s.CompanyName == "" {
		return errors.New("companyName é obrigatório")
	}
	if s.ContactName == "" {
		return errors.New("contactName é obrigatório")
	}
	return nil
}

// Normalize completa campos ausentes de registros antigos. Roda na borda de
// leitura do repositório e na criação, nunca no meio das agregações.
func (s *Sale) Normalize() {
	s.Stage = NormalizeStage(string(s.Stage))
	if s.Stage == "" {
		s.Stage = StageProspeccao
	}
	if s.Vendedor == "" {
		s.Vendedor = s.SalesPerson
	}
}

// Closed indica venda ganha. É a única definição usada pelas métricas;
// StatusFechado não entra aqui (ver DESIGN.md).
func (s *Sale) Closed() bool {
	return s.Stage == StageFinalizado
}

func (s *Sale) Lost() bool {
	return s.Stage == StagePerdida
}

type SaleRepositoryInterface interface {
	Create(ctx context.Context, sale *Sale) error
	FindByID(ctx context.Context, id string) (*Sale, error)
	FindAll(ctx context.Context) ([]Sale, error)
	Update(ctx context.Context, sale *Sale) error
	Delete(ctx context.Context, id string) error
}
