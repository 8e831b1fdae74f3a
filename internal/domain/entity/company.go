package entity

import "time"

// Company empresa de transporte a la que pertenecen usuarios, camiones y viajes.
type Company struct {
	ID        string
	Name      string
	Email     string
	VATCode   string // code_tva en el formulario de registro
	Address   string
	Phone     string
	LegalRep  string // representante legal
	CreatedAt time.Time
	UpdatedAt time.Time
}
