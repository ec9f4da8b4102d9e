package render

import (
	"fmt"

	"github.com/Dogecat0/Aperilex-sub002/pkg/models/domain"
)

// maxDepth bounds recursion through a record tree. Valid payloads are
// shallow; hitting the guard means the tree contract is broken.
const maxDepth = 32

// RenderValue renders one field of an analysis record into a display
// block. A nil block with a nil error means the value produces no
// output and the caller must skip it, not render a placeholder.
func RenderValue(key string, v domain.Value, depth int) (*domain.Block, error) {
	if depth > maxDepth {
		return nil, &StructuralError{Key: key, Depth: depth}
	}

	switch v.Kind {
	case domain.KindNull:
		return nil, nil

	case domain.KindString:
		if v.Str == "" {
			return nil, nil
		}
		return &domain.Block{
			Kind:  domain.BlockParagraph,
			Label: FormatKey(key),
			Body:  v.Str,
			Depth: depth,
		}, nil

	case domain.KindList:
		if len(v.List) == 0 {
			return nil, nil
		}
		block := domain.Block{
			Kind:  domain.BlockList,
			Label: FormatKey(key),
			Count: len(v.List),
			Depth: depth,
		}
		for _, item := range v.List {
			block.Items = append(block.Items, renderListItem(item))
		}
		return &block, nil

	case domain.KindRecord:
		block := domain.Block{
			Kind:  domain.BlockGroup,
			Label: FormatKey(key),
			Depth: depth,
		}
		for _, f := range v.Fields {
			child, err := RenderValue(f.Key, f.Value, depth+1)
			if err != nil {
				return nil, err
			}
			if child == nil {
				continue
			}
			block.Items = append(block.Items, *child)
		}
		return &block, nil

	case domain.KindNumber:
		return &domain.Block{
			Kind:  domain.BlockField,
			Label: FormatKey(key),
			Body:  formatNumber(v.Num),
			Depth: depth,
		}, nil

	case domain.KindBool:
		body := "false"
		if v.Bool {
			body = "true"
		}
		return &domain.Block{
			Kind:  domain.BlockField,
			Label: FormatKey(key),
			Body:  body,
			Depth: depth,
		}, nil
	}

	// The value model forbids other kinds, but external data may
	// violate the contract; stringify instead of failing.
	return &domain.Block{
		Kind:  domain.BlockField,
		Label: FormatKey(key),
		Body:  fmt.Sprintf("%v", v),
		Depth: depth,
	}, nil
}

// renderListItem renders one list element. Scalars become plain item
// blocks; records go through the card sub-renderer, which flattens
// fields a single level so list contexts cannot recurse.
func renderListItem(v domain.Value) domain.Block {
	switch v.Kind {
	case domain.KindRecord:
		return renderCardItem(v)
	case domain.KindList:
		return domain.Block{Kind: domain.BlockField, Body: fmt.Sprintf("%d items", len(v.List))}
	default:
		return domain.Block{Kind: domain.BlockField, Body: scalarText(v)}
	}
}

func renderCardItem(rec domain.Value) domain.Block {
	card := domain.Block{Kind: domain.BlockCard}
	for _, f := range rec.Fields {
		var body string
		switch f.Value.Kind {
		case domain.KindNull:
			continue
		case domain.KindList:
			body = fmt.Sprintf("%d items", len(f.Value.List))
		case domain.KindRecord:
			body = fmt.Sprintf("%d fields", len(f.Value.Fields))
		default:
			body = scalarText(f.Value)
			if body == "" {
				continue
			}
		}
		card.Items = append(card.Items, domain.Block{
			Kind:  domain.BlockField,
			Label: FormatKey(f.Key),
			Body:  body,
		})
	}
	return card
}

func scalarText(v domain.Value) string {
	switch v.Kind {
	case domain.KindString:
		return v.Str
	case domain.KindNumber:
		return formatNumber(v.Num)
	case domain.KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	}
	return ""
}
