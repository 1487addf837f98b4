package model

// StakeKeyDefinition describes a staking contract registered in the tokens table.
type StakeKeyDefinition struct {
	StakeErgoTree  string `gorm:"column:stake_ergotree"`
	StakeTokenID   string `gorm:"column:stake_token_id"`
	TokenName      string `gorm:"column:token_name"`
	TokenID        string `gorm:"column:token_id"`
	TokenType      string `gorm:"column:token_type"`
	EmissionAmount int64  `gorm:"column:emission_amount"`
	Decimals       int32  `gorm:"column:decimals"`
}

// TableName implements gorm's tabler.
func (StakeKeyDefinition) TableName() string {
	return "tokens"
}
