package indexer

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
	"github.com/goodnatureofminers/staking-indexer/internal/staking/sigma"
	"go.uber.org/zap"
)

const (
	// ergoTreeHeaderHex is the hex length of the script header dropped from raw addresses.
	ergoTreeHeaderHex = 6

	penaltyRegister  = "R4"
	penaltyIndex     = 1
	stakeKeyRegister = "R5"
)

var errMissingStakedAsset = errors.New("stake box has no staked asset")

type stakeKeyDetector struct {
	logger *zap.Logger
}

// Detect turns fetched boxes into address and stake key records. A box whose
// stake key data cannot be decoded is skipped entirely.
func (d *stakeKeyDetector) Detect(defs map[string]model.StakeKeyDefinition, boxes []model.FetchedBox) model.Detection {
	var det model.Detection
	seen := make(map[string]struct{})

	for _, box := range boxes {
		detail := box.Detail

		key, isKey, err := stakeKey(defs, box)
		if err != nil {
			det.Skipped++
			d.logger.Warn("skip box with undecodable stake key",
				zap.String("box_id", detail.BoxID),
				zap.Int64("height", box.Height),
				zap.Error(err),
			)
			continue
		}

		raw := rawAddress(detail.ErgoTree)
		if isKey {
			key.Address = raw
			det.Keys = append(det.Keys, key)
		}
		for _, asset := range detail.Assets {
			det.Addresses = append(det.Addresses, model.AddressTokenRecord{
				Address:  raw,
				TokenID:  asset.TokenID,
				Amount:   asset.Amount,
				BoxID:    detail.BoxID,
				Height:   box.Height,
				ErgoTree: detail.ErgoTree,
			})
		}
		if len(detail.Assets) > 0 {
			seen[raw] = struct{}{}
		}
		det.MaxHeight = max(det.MaxHeight, box.Height)
	}

	det.AddressCount = len(seen)
	return det
}

func stakeKey(defs map[string]model.StakeKeyDefinition, box model.FetchedBox) (model.StakeKeyRecord, bool, error) {
	detail := box.Detail
	def, ok := defs[detail.ErgoTree]
	if !ok || len(detail.Assets) == 0 || detail.Assets[0].TokenID != def.StakeTokenID {
		return model.StakeKeyRecord{}, false, nil
	}
	if len(detail.Assets) < 2 {
		return model.StakeKeyRecord{}, false, errMissingStakedAsset
	}

	penalty, err := decodePenalty(detail.Registers)
	if err != nil {
		return model.StakeKeyRecord{}, false, err
	}
	stakeKeyID, err := decodeStakeKeyID(detail.Registers)
	if err != nil {
		return model.StakeKeyRecord{}, false, err
	}

	return model.StakeKeyRecord{
		BoxID:           detail.BoxID,
		TokenID:         def.StakeTokenID,
		Amount:          detail.Assets[1].Amount,
		Penalty:         penalty,
		StakeKeyTokenID: stakeKeyID,
		Height:          box.Height,
		ErgoTree:        detail.ErgoTree,
	}, true, nil
}

func decodePenalty(registers map[string]string) (int64, error) {
	v, err := decodeRegister(registers, penaltyRegister)
	if err != nil {
		return 0, err
	}
	elem, err := v.Index(penaltyIndex)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", penaltyRegister, err)
	}
	return elem.Int64()
}

func decodeStakeKeyID(registers map[string]string) (string, error) {
	v, err := decodeRegister(registers, stakeKeyRegister)
	if err != nil {
		return "", err
	}
	id, err := v.Bytes()
	if err != nil {
		return "", fmt.Errorf("%s: %w", stakeKeyRegister, err)
	}
	return hex.EncodeToString(id), nil
}

func decodeRegister(registers map[string]string, name string) (sigma.Value, error) {
	encoded, ok := registers[name]
	if !ok {
		return sigma.Value{}, fmt.Errorf("register %s is missing", name)
	}
	v, err := sigma.DecodeHex(encoded)
	if err != nil {
		return sigma.Value{}, fmt.Errorf("register %s: %w", name, err)
	}
	return v, nil
}

func rawAddress(ergoTree string) string {
	if len(ergoTree) <= ergoTreeHeaderHex {
		return ""
	}
	return ergoTree[ergoTreeHeaderHex:]
}
