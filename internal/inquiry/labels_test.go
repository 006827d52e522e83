package inquiry

import "testing"

func TestLabelsAreTotal(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"phone allowed", PhoneAllowed.Label(), "はい"},
		{"phone disallowed", PhoneDisallowed.Label(), "いいえ"},
		{"phone unknown", PhonePermission("maybe").Label(), "いいえ"},
		{"phone empty", PhonePermission("").Label(), "いいえ"},

		{"usage business", UsageBusiness.Label(), "事業（個人事業者または法人）"},
		{"usage personal", UsagePersonal.Label(), "個人で使用"},
		{"usage unknown", UsageType("hobby").Label(), "個人で使用"},

		{"invoice registered", InvoiceRegistered.Label(), "はい"},
		{"invoice not registered", InvoiceNotRegistered.Label(), "いいえ"},
		{"invoice empty", InvoiceRegistration("").Label(), "いいえ"},

		{"number will provide", WillProvide.Label(), "はい"},
		{"number will not provide", WillNotProvide.Label(), "いいえ"},
		{"number empty", RegistrationNumber("").Label(), "いいえ"},

		{"condition scrap", ConditionScrap.Label(), "スクラップ"},
		{"condition used", ConditionUsed.Label(), "中古"},
		{"condition new", ConditionNew.Label(), "新品"},
		{"condition unknown", Condition("refurbished").Label(), "新品"},
		{"condition empty", Condition("").Label(), "新品"},

		{"city tokyo", CityTokyo.Label(), "東京"},
		{"city osaka", CityOsaka.Label(), "大阪"},
		{"city not selected", CityNotSelected.Label(), "未選択"},
		{"city raw", City("kyoto").Label(), "kyoto"},

		{"source web", SourceWeb.Label(), "ウェブ検索"},
		{"source ad", SourceAd.Label(), "広告"},
		{"source none", SourceNone.Label(), ""},
		{"source unknown", Source("friend").Label(), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
