// Package sqlrepository implements the record store on PostgreSQL (or SQLite
// for local runs) through GORM. Table and column names follow the DynamoDB
// items so data can move between backends unchanged.
package sqlrepository

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuoteModel struct {
	ID          string         `gorm:"primaryKey;type:varchar(36)"`
	UserID      string         `gorm:"type:varchar(36);not null;index:idx_propostas_user_created,priority:1"`
	Numero      int            `gorm:"not null;default:0"`
	ClienteNome string         `gorm:"type:varchar(255)"`
	ClienteWpp  string         `gorm:"type:varchar(50)"`
	ClienteEnd  string         `gorm:"type:text"`
	ClienteRef  string         `gorm:"type:text"`
	TipoMovel   string         `gorm:"type:varchar(255)"`
	Validade    string         `gorm:"type:varchar(100)"`
	Status      string         `gorm:"type:varchar(20);not null;default:nao_enviada"`
	VTotal      float64        `gorm:"not null;default:0"`
	Medidas     datatypes.JSON `gorm:"type:json"`
	Ambientes   datatypes.JSON `gorm:"type:json"`

	Chapa      string `gorm:"type:text"`
	Acabamento string `gorm:"type:text"`
	Ferragens  string `gorm:"type:text"`
	Detalhes   string `gorm:"type:text"`
	Inicio     string `gorm:"type:varchar(100)"`
	Entrega    string `gorm:"type:varchar(100)"`
	PrazoObs   string `gorm:"type:text"`
	Garantia   string `gorm:"type:text"`
	Incluso    string `gorm:"type:text"`
	Excluso    string `gorm:"type:text"`
	ObsFinal   string `gorm:"type:text"`

	VMat      float64
	VDespesas float64
	VFerr     float64
	VOutros   float64
	VMargem   float64

	PgtoFormas   datatypes.JSON `gorm:"type:json"`
	PgtoParcelas int
	PgtoJuros    bool
	PgtoPix      string         `gorm:"type:varchar(100)"`
	PgtoPixTipo  string         `gorm:"type:varchar(20)"`
	PgtoCondicao string         `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;index:idx_propostas_user_created,priority:2"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (QuoteModel) TableName() string {
	return "propostas"
}

type ProfileModel struct {
	ID                    string    `gorm:"primaryKey;type:varchar(36)"`
	Nome                  string    `gorm:"type:varchar(255)"`
	Responsavel           string    `gorm:"type:varchar(255)"`
	CPF                   string    `gorm:"column:cpf;type:varchar(20)"`
	Wpp                   string    `gorm:"type:varchar(50)"`
	Insta                 string    `gorm:"type:varchar(100)"`
	Cidade                string    `gorm:"type:varchar(100)"`
	Especialidade         string    `gorm:"type:varchar(255)"`
	Endereco              string    `gorm:"type:text"`
	Logo                  string    `gorm:"type:text"`
	Unidade               string    `gorm:"type:varchar(2)"`
	Validade              string    `gorm:"type:varchar(100)"`
	PrazoMin              string    `gorm:"type:varchar(50)"`
	PrazoMax              string    `gorm:"type:varchar(50)"`
	Rodape                string    `gorm:"type:text"`
	IsActive              bool      `gorm:"not null;default:false"`
	StripeCustomerID      string    `gorm:"type:varchar(255);index"`
	StripeSubscriptionID  string    `gorm:"type:varchar(255)"`
	SubscriptionStatus    string    `gorm:"type:varchar(20)"`
	SubscriptionUpdatedAt *time.Time
	UpdatedAt             time.Time `gorm:"not null"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}

type AccountModel struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	DisplayName   string    `gorm:"type:varchar(255)"`
	EmailVerified bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (AccountModel) TableName() string {
	return "accounts"
}

// AutoMigrate creates or updates the three tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&QuoteModel{},
		&ProfileModel{},
		&AccountModel{},
	)
}
