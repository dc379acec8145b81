package booking

import (
	"fmt"
	"strings"

	"panditseva/catalog"
)

// samagriBlock renders the item checklist for the detected puja type.
// Display formatting only; ranking never reads catalog data.
func samagriBlock(pujaType *string) string {
	if pujaType == nil {
		return "Puja samagri will appear here once we detect your puja type."
	}
	items, ok := catalog.SamagriFor(*pujaType)
	title := fmt.Sprintf("Puja Samagri for %s", *pujaType)
	if !ok || len(items) == 0 {
		return title + "\n(No preset list found; pandit will share a checklist on confirmation.)"
	}
	var sb strings.Builder
	sb.WriteString(title)
	for _, item := range items {
		sb.WriteString("\n- ")
		sb.WriteString(item)
	}
	return sb.String()
}

// guideBlock renders the preparation guidance for the detected puja type.
func guideBlock(pujaType *string) string {
	if pujaType == nil {
		return "Puja instructions will appear after we detect the puja type."
	}
	info, ok := catalog.InstructionsFor(*pujaType)
	if !ok {
		return fmt.Sprintf("Instructions for %s\n(Pandit will brief you on custom vidhi.)", *pujaType)
	}
	return fmt.Sprintf(
		"Instructions for %s\n- Preparation: %s\n- Duration: %s\n- Dress code: %s\n- Notes: %s",
		*pujaType, info.Preparation, info.Duration, info.DressCode, info.Notes,
	)
}
