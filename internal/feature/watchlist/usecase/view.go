package usecase

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/samber/lo"

	"watchlist_backend/internal/feature/watchlist/domain/entity"
)

// SortKey は表示ソートの基準となるフィールドを識別します。
type SortKey string

// Sort keys understood by the view pipeline. Anything else falls back to
// chronological order by capture timestamp.
const (
	SortByOrder     SortKey = "order"
	SortByCode      SortKey = "code"
	SortByName      SortKey = "name"
	SortByPrice     SortKey = "price"
	SortByPriceEUR  SortKey = "priceEur"
	SortByChangePct SortKey = "changePct"
	SortByRowNo     SortKey = "rowNo"
)

// SortDirection は昇順・降順を表します。
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortState holds the active sort key and direction.
type SortState struct {
	Key       SortKey
	Direction SortDirection
}

// DefaultSortState is the initial sort: manual order, ascending.
func DefaultSortState() SortState {
	return SortState{Key: SortByOrder, Direction: Ascending}
}

// Toggle は同じキーの再指定で方向を反転し、別のキーの指定で昇順にリセットします。
func (s *SortState) Toggle(key SortKey) {
	if s.Key == key {
		if s.Direction == Ascending {
			s.Direction = Descending
		} else {
			s.Direction = Ascending
		}
		return
	}
	s.Key = key
	s.Direction = Ascending
}

// Filters holds the active textual filters. Each value is matched as a
// case-insensitive substring against the rendered field; an empty value
// matches everything.
type Filters struct {
	Code      string
	Name      string
	Price     string
	PriceEUR  string
	ChangePct string
}

// Classification for rendering a percentage value.
const (
	ClassPositive = "positive"
	ClassNegative = "negative"
	ClassNeutral  = "neutral"
)

// Row は表示用に導出された1行です。数値はコア側に、文字列は表示境界に属します。
type Row struct {
	Record entity.Record

	RowNo         int    // 1始まりの表示行番号
	Key           string // レコードの安定キー
	CodeText      string
	NameText      string
	CostText      string
	PriceText     string // 現地通貨の価格文字列
	PriceEURText  string
	ChangePctText string // 符号付き・小数2桁、欠損は"-"
	ChangeClass   string
	GainPctText   string // 取得単価に対する評価損益率、欠損は"-"
	GainClass     string
	RangeText     string // 安値 - 高値
}

// DisplayRows はレコード集合にフィルタとソートを適用し、表示行を導出します。
// 純粋関数であり、入力のレコードを変更しません。
func DisplayRows(records []entity.Record, f Filters, s SortState) []Row {
	filtered := lo.Filter(records, func(r entity.Record, _ int) bool {
		return matches(r, f)
	})

	sortRecords(filtered, s)

	return lo.Map(filtered, func(r entity.Record, i int) Row {
		return deriveRow(r, i+1)
	})
}

// matches は全てのアクティブなフィルタが対応する表示文字列に
// 部分一致する場合にtrueを返します。
func matches(r entity.Record, f Filters) bool {
	return containsFold(codeText(r), f.Code) &&
		containsFold(r.Name, f.Name) &&
		containsFold(priceText(r), f.Price) &&
		containsFold(priceEURText(r), f.PriceEUR) &&
		containsFold(changePctText(r), f.ChangePct)
}

// sortRecords は安定ソートを適用します。同値の並びは元のコレクション順を保ちます。
func sortRecords(rs []entity.Record, s SortState) {
	asc := s.Direction != Descending
	sort.SliceStable(rs, func(i, j int) bool {
		a, b := rs[i], rs[j]
		if !asc {
			a, b = b, a
		}
		switch s.Key {
		case SortByOrder:
			return a.Order < b.Order
		case SortByCode:
			return strings.ToUpper(a.Code) < strings.ToUpper(b.Code)
		case SortByName:
			return strings.ToUpper(a.Name) < strings.ToUpper(b.Name)
		case SortByPrice:
			return numOrZero(a.Price) < numOrZero(b.Price)
		case SortByPriceEUR:
			return numOrZero(a.PriceEUR) < numOrZero(b.PriceEUR)
		case SortByChangePct:
			return numOrZero(a.ChangePct()) < numOrZero(b.ChangePct())
		default:
			// rowNoと未知のキーは取得時刻順
			return a.Timestamp.Before(b.Timestamp)
		}
	})
}

// numOrZero は数値ソート用のキーを取り出します。欠損値と非有限値は0として扱います。
func numOrZero(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return *v
}

// deriveRow は1レコード分の表示値を導出します。
func deriveRow(r entity.Record, rowNo int) Row {
	changePct := r.ChangePct()
	gainPct := r.GainPct()

	return Row{
		Record:        r,
		RowNo:         rowNo,
		Key:           r.Key(),
		CodeText:      codeText(r),
		NameText:      r.Name,
		CostText:      eurText(r.AverageCost),
		PriceText:     priceText(r),
		PriceEURText:  priceEURText(r),
		ChangePctText: changePctText(r),
		ChangeClass:   classify(changePct),
		GainPctText:   pctText(gainPct),
		GainClass:     classify(gainPct),
		RangeText:     rangeText(r),
	}
}

// classify は百分率値を表示クラスに対応付けます。
func classify(pct *float64) string {
	switch {
	case pct == nil:
		return ClassNeutral
	case *pct > 0:
		return ClassPositive
	case *pct < 0:
		return ClassNegative
	default:
		return ClassNeutral
	}
}

func codeText(r entity.Record) string {
	if r.Code == "" {
		return "-"
	}
	return r.Code
}

func priceText(r entity.Record) string {
	if r.Price == nil {
		return "-"
	}
	return strings.TrimSpace(formatNum(r.Price, 4) + " " + r.Currency)
}

func priceEURText(r entity.Record) string {
	return eurText(r.PriceEUR)
}

func changePctText(r entity.Record) string {
	return pctText(r.ChangePct())
}

// pctText は符号付き・小数2桁の百分率文字列を返します。欠損は"-"です。
func pctText(pct *float64) string {
	if pct == nil || math.IsNaN(*pct) || math.IsInf(*pct, 0) {
		return "-"
	}
	sign := ""
	if *pct >= 0 {
		sign = "+"
	}
	return sign + strconv.FormatFloat(*pct, 'f', 2, 64) + "%"
}

func rangeText(r entity.Record) string {
	if r.Low == nil || r.High == nil {
		return "-"
	}
	return formatNum(r.Low, 4) + " - " + formatNum(r.High, 4)
}

// eurText はユーロ金額の表示文字列を返します。通貨表記はgo-moneyに委ねます。
func eurText(v *float64) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return "-"
	}
	return money.New(int64(math.Round(*v*100)), money.EUR).Display()
}

// formatNum は固定小数点の表示文字列を返します。欠損は"-"です。
func formatNum(v *float64, decimals int) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', decimals, 64)
}

// containsFold は大文字小文字を無視した部分一致判定です。空のneedleは常に一致します。
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
