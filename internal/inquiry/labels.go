package inquiry

const (
	labelYes = "はい"
	labelNo  = "いいえ"
)

// PhonePermission is whether the submitter accepts a phone call.
type PhonePermission string

const (
	PhoneAllowed    PhonePermission = "allow_phone_call"
	PhoneDisallowed PhonePermission = "disallow_phone_call"
)

// Label is はい only for PhoneAllowed.
func (p PhonePermission) Label() string {
	if p == PhoneAllowed {
		return labelYes
	}
	return labelNo
}

// UsageType is how the submitter uses the goods.
type UsageType string

const (
	UsageBusiness UsageType = "business"
	UsagePersonal UsageType = "personal"
)

func (u UsageType) Label() string {
	if u == UsageBusiness {
		return "事業（個人事業者または法人）"
	}
	return "個人で使用"
}

// InvoiceRegistration is the submitter's qualified-invoice registration status.
type InvoiceRegistration string

const (
	InvoiceRegistered    InvoiceRegistration = "registered"
	InvoiceNotRegistered InvoiceRegistration = "not_registered"
)

func (r InvoiceRegistration) Label() string {
	if r == InvoiceRegistered {
		return labelYes
	}
	return labelNo
}

// RegistrationNumber is whether the submitter will provide their registration number.
type RegistrationNumber string

const (
	WillProvide    RegistrationNumber = "will_provide"
	WillNotProvide RegistrationNumber = "will_not_provide"
)

func (r RegistrationNumber) Label() string {
	if r == WillProvide {
		return labelYes
	}
	return labelNo
}

// City is the prefecture the goods are in.
type City string

const (
	CityNotSelected City = "not_selected"
	CityTokyo       City = "tokyo"
	CityOsaka       City = "osaka"
)

// Label returns the prefecture name. Values outside the form's options are shown as sent.
func (c City) Label() string {
	switch c {
	case CityTokyo:
		return "東京"
	case CityOsaka:
		return "大阪"
	case CityNotSelected:
		return "未選択"
	default:
		return string(c)
	}
}

// Source is how the submitter found the site.
type Source string

const (
	SourceNone Source = "none"
	SourceWeb  Source = "web"
	SourceAd   Source = "ad"
)

// Label is empty for SourceNone and anything unrecognized.
func (s Source) Label() string {
	switch s {
	case SourceWeb:
		return "ウェブ検索"
	case SourceAd:
		return "広告"
	default:
		return ""
	}
}

// Condition is the state of the goods offered.
type Condition string

const (
	ConditionScrap Condition = "scrap"
	ConditionUsed  Condition = "used"
	ConditionNew   Condition = "new"
)

// Label falls through to 新品 for anything other than scrap or used, including empty.
func (c Condition) Label() string {
	switch c {
	case ConditionScrap:
		return "スクラップ"
	case ConditionUsed:
		return "中古"
	default:
		return "新品"
	}
}
