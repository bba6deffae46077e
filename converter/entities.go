package converter

import (
	"encoding/json"
	"strconv"
	"strings"
)

// LinkEntity is the closed set of link-like entities understood by the converters:
// InternalPageLink, ExternalLink and AnchorIdentifier.
type LinkEntity interface {
	entityType() string
}

// InternalPageLink points at a page managed by the host, optionally at a fragment on it.
// The live URL is never stored; it is resolved at render time.
type InternalPageLink struct {
	PageID   string
	Hash     string
	ParentID string
}

// ExternalLink points at an arbitrary URL.
type ExternalLink struct {
	URL  string
	Hash string
}

// AnchorIdentifier marks a span as a named jump target.
type AnchorIdentifier struct {
	TargetID     string
	SourceAnchor string
}

// AnchorTarget is a named position in a document.
type AnchorTarget struct {
	ID           string
	SourceAnchor string
}

func (InternalPageLink) entityType() string { return EntityLink }
func (ExternalLink) entityType() string     { return EntityLink }
func (AnchorIdentifier) entityType() string { return EntityAnchorIdentifier }

// Target returns the anchor target marked by the identifier.
func (a AnchorIdentifier) Target() AnchorTarget {
	return AnchorTarget{ID: a.TargetID, SourceAnchor: a.SourceAnchor}
}

// DecodeEntity maps a raw entity onto its typed variant.
// The second result is false for entity types this package does not handle.
func DecodeEntity(entity Entity) (LinkEntity, bool) {
	switch entity.Type {
	case EntityAnchorIdentifier:
		return AnchorIdentifier{
			TargetID:     strings.TrimLeft(stringValue(entity.Data["anchor"]), "#"),
			SourceAnchor: stringValue(entity.Data["data-id"]),
		}, true
	case EntityLink:
		if id, ok := entity.Data["id"]; ok && id != nil {
			return InternalPageLink{
				PageID:   stringValue(id),
				Hash:     stringValue(entity.Data["hash"]),
				ParentID: stringValue(entity.Data["parentId"]),
			}, true
		}
		return ExternalLink{
			URL:  stringValue(entity.Data["url"]),
			Hash: stringValue(entity.Data["hash"]),
		}, true
	default:
		return nil, false
	}
}

// EncodeEntity maps a typed entity back onto its raw editor form.
func EncodeEntity(link LinkEntity) Entity {
	switch typed := link.(type) {
	case InternalPageLink:
		data := map[string]any{"id": numericOrString(typed.PageID)}
		if typed.Hash != "" {
			data["hash"] = typed.Hash
		}
		if typed.ParentID != "" {
			data["parentId"] = numericOrString(typed.ParentID)
		}
		return Entity{Type: EntityLink, Mutability: MutabilityMutable, Data: data}
	case ExternalLink:
		data := map[string]any{"url": typed.URL}
		if typed.Hash != "" {
			data["hash"] = typed.Hash
		}
		return Entity{Type: EntityLink, Mutability: MutabilityMutable, Data: data}
	case AnchorIdentifier:
		return Entity{
			Type:       EntityAnchorIdentifier,
			Mutability: MutabilityMutable,
			Data: map[string]any{
				"anchor":  typed.TargetID,
				"data-id": typed.SourceAnchor,
			},
		}
	default:
		return Entity{}
	}
}

// HeadingAnchor returns the DOM id for a heading block: the custom anchor when set,
// otherwise the id metadata. The second result is false when no id attribute applies.
func HeadingAnchor(block Block) (string, bool) {
	if anchor := stringValue(block.Data["anchor"]); anchor != "" {
		return anchor, true
	}
	if id, ok := block.Data["id"]; ok && id != nil {
		return stringValue(id), true
	}
	return "", false
}

func stringValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case json.Number:
		return typed.String()
	case bool:
		return strconv.FormatBool(typed)
	default:
		return ""
	}
}

// numericOrString keeps page ids numeric in the editor state when they look like integers.
func numericOrString(value string) any {
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return value
}
