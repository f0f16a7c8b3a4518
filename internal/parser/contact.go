package parser

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/rs/zerolog"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/types"
)

// 联系方式匹配模式
var (
	emailRegex    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRegex    = regexp.MustCompile(`\(?\d{3}\)?[-\s]?\d{3}[-\s]?\d{4}`)
	linkedinRegex = regexp.MustCompile(`(?i)linkedin\.com/in/[a-zA-Z0-9_-]+`)
	githubRegex   = regexp.MustCompile(`(?i)github\.com/[a-zA-Z0-9_-]+`)
	websiteRegex  = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,6}(?:/\S*)?`)
)

// ContactExtractor 联系方式提取器
// 各通道的匹配器彼此独立，对同一文本各自扫描，每个通道最多取一个值
type ContactExtractor struct {
	logger          zerolog.Logger
	phoneRegion     string
	providerDomains []string
}

// NewContactExtractor 创建联系方式提取器
func NewContactExtractor(cfg *config.Config) *ContactExtractor {
	return &ContactExtractor{
		logger:          logger.Logger.With().Str("component", "contact_extractor").Logger(),
		phoneRegion:     cfg.Extractor.PhoneRegion,
		providerDomains: cfg.EmailProviderDomains,
	}
}

// Extract 提取邮箱、电话和链接类联系方式，未命中的通道在结果中缺失
func (e *ContactExtractor) Extract(text string) types.ContactInfo {
	contact := types.ContactInfo{}

	emailSpan := emailRegex.FindStringIndex(text)
	if emailSpan != nil {
		contact[types.ContactEmail] = strings.TrimSpace(text[emailSpan[0]:emailSpan[1]])
	}

	if phone := e.firstPhone(text); phone != "" {
		contact[types.ContactMobile] = phone
	}

	if m := linkedinRegex.FindString(text); m != "" {
		contact[types.ContactLinkedIn] = strings.TrimSpace(m)
	}
	if m := githubRegex.FindString(text); m != "" {
		contact[types.ContactGitHub] = strings.TrimSpace(m)
	}

	if site := e.firstWebsite(text, emailSpan, contact); site != "" {
		contact[types.ContactWebsite] = site
	}

	return contact
}

// firstPhone 返回文档顺序里第一个通过号码库校验的电话
// 没有任何候选通过校验时退回第一个原始匹配
func (e *ContactExtractor) firstPhone(text string) string {
	candidates := phoneRegex.FindAllString(text, -1)
	if len(candidates) == 0 {
		return ""
	}
	for _, candidate := range candidates {
		num, err := phonenumbers.Parse(candidate, e.phoneRegion)
		if err != nil {
			continue
		}
		if phonenumbers.IsValidNumber(num) {
			return strings.TrimSpace(candidate)
		}
	}
	e.logger.Debug().Str("candidate", candidates[0]).Msg("电话候选均未通过号码库校验，保留首个原始匹配")
	return strings.TrimSpace(candidates[0])
}

// firstWebsite 返回第一个可信的个人网站匹配
// 排除：与邮箱匹配区间重叠的片段、邮箱域名与常见邮箱服务商域名、已被占用的档案链接域名
func (e *ContactExtractor) firstWebsite(text string, emailSpan []int, claimed types.ContactInfo) string {
	emailDomain := ""
	if email, ok := claimed[types.ContactEmail]; ok {
		if at := strings.LastIndex(email, "@"); at >= 0 {
			emailDomain = strings.ToLower(email[at+1:])
		}
	}

	for _, span := range websiteRegex.FindAllStringIndex(text, -1) {
		if emailSpan != nil && span[0] < emailSpan[1] && span[1] > emailSpan[0] {
			continue
		}

		candidate := strings.TrimSpace(text[span[0]:span[1]])
		lower := strings.ToLower(candidate)
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			continue
		}

		host := websiteHost(lower)
		if host == "" || host == emailDomain {
			continue
		}
		if e.isProviderDomain(host) {
			continue
		}

		return candidate
	}
	return ""
}

// websiteHost 从匹配片段中取出主机名（去掉协议、www前缀和路径）
func websiteHost(url string) string {
	host := strings.TrimPrefix(url, "https://")
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimPrefix(host, "www.")
	if slash := strings.Index(host, "/"); slash >= 0 {
		host = host[:slash]
	}
	return host
}

func (e *ContactExtractor) isProviderDomain(host string) bool {
	for _, domain := range e.providerDomains {
		if strings.EqualFold(host, domain) {
			return true
		}
	}
	return false
}
