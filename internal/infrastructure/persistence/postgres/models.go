package postgres

import "time"

// Nomes das constraints de unicidade; o PostgreSQL os reporta em PgError.ConstraintName
const (
	constraintAthleteCPF         = "uq_atletas_cpf"
	constraintAthleteName        = "uq_atletas_nome"
	constraintCategoryName       = "uq_categorias_nome"
	constraintTrainingCenterName = "uq_centros_treinamento_nome"
)

// CategoryModel é o model GORM para categorias
type CategoryModel struct {
	ID   string `gorm:"type:uuid;primaryKey"`
	Nome string `gorm:"type:varchar(50);uniqueIndex:uq_categorias_nome;not null"`
}

func (CategoryModel) TableName() string {
	return "categorias"
}

// TrainingCenterModel é o model GORM para centros de treinamento
type TrainingCenterModel struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Nome         string `gorm:"type:varchar(20);uniqueIndex:uq_centros_treinamento_nome;not null"`
	Endereco     string `gorm:"type:varchar(60)"`
	Proprietario string `gorm:"type:varchar(30)"`
}

func (TrainingCenterModel) TableName() string {
	return "centros_treinamento"
}

// AthleteModel é o model GORM para atletas
type AthleteModel struct {
	ID                  string               `gorm:"type:uuid;primaryKey"`
	Nome                string               `gorm:"type:varchar(50);uniqueIndex:uq_atletas_nome;not null"`
	CPF                 string               `gorm:"column:cpf;type:varchar(11);uniqueIndex:uq_atletas_cpf;not null"`
	Idade               int                  `gorm:"not null"`
	Peso                float64              `gorm:"not null"`
	Altura              float64              `gorm:"not null"`
	Sexo                string               `gorm:"type:varchar(1);not null"`
	CreatedAt           time.Time            `gorm:"not null"`
	CategoriaID         string               `gorm:"type:uuid;not null;index"`
	Categoria           *CategoryModel       `gorm:"foreignKey:CategoriaID;constraint:OnDelete:RESTRICT"`
	CentroTreinamentoID string               `gorm:"type:uuid;not null;index"`
	CentroTreinamento   *TrainingCenterModel `gorm:"foreignKey:CentroTreinamentoID;constraint:OnDelete:RESTRICT"`
}

func (AthleteModel) TableName() string {
	return "atletas"
}

// allModels lista os models na ordem de dependência (folhas primeiro)
func allModels() []interface{} {
	return []interface{}{
		&CategoryModel{},
		&TrainingCenterModel{},
		&AthleteModel{},
	}
}
