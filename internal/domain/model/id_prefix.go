package model

// 識別子のプレフィックス。種類が一目で分かるようにする。
const (
	IDPrefixProduct         = "P"
	IDPrefixSupplier        = "S"
	IDPrefixSale            = "SA"
	IDPrefixCustomer        = "C"
	IDPrefixDebtTransaction = "D"
)
