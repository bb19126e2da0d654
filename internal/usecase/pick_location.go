// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package usecase

import (
	"context"

	"github.com/rafaelvolkmer/stylerank/internal/domain/ports"
)

type PickLocationUseCase struct {
	storage ports.ReportStorage
	picker  ports.LocationPicker
}

func NewPickLocationUseCase(storage ports.ReportStorage, picker ports.LocationPicker) *PickLocationUseCase {
	return &PickLocationUseCase{storage: storage, picker: picker}
}

// Execute opens the picker over the last saved report of root.
func (uc *PickLocationUseCase) Execute(ctx context.Context, root string) error {
	report, err := uc.storage.Load(ctx, root)
	if err != nil {
		return err
	}
	return uc.picker.Pick(ctx, report)
}
