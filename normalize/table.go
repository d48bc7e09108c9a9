package normalize

import (
	"gateway/entity"
)

// Table maps a raw table record. Rows without any table-number-like key
// are dropped by the caller (ID alone is not enough to seat anyone).
func Table(raw Raw) entity.Table {
	return entity.Table{
		ID:          Str(raw, "id", "_id", "uuid", "table_id"),
		TableNumber: int(Num(raw, "tableNumber", "table_number", "number")),
		IsActive:    Bool(raw, "isActive", "is_active", "active"),
		CreatedAt:   Time(raw, "createdAt", "created_at", "created"),
		QRCodeURL:   Str(raw, "qrCodeUrl", "qr_code_url", "qrCode"),
	}
}

func Tables(raws []Raw) []entity.Table {
	out := make([]entity.Table, 0, len(raws))
	for _, r := range raws {
		t := Table(r)
		if t.TableNumber == 0 {
			continue
		}
		out = append(out, t)
	}
	return out
}
