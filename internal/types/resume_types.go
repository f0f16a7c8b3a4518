package types

// SectionKey 表示简历逻辑章节的固定枚举键
type SectionKey string

const (
	// SectionProfessionalSummary 个人总结章节
	SectionProfessionalSummary SectionKey = "professional_summary"
	// SectionAreasOfExpertise 技能/专长章节
	SectionAreasOfExpertise SectionKey = "areas_of_expertise"
	// SectionEducational 教育经历章节
	SectionEducational SectionKey = "educational"
	// SectionProfessionalExperience 工作经历章节
	SectionProfessionalExperience SectionKey = "professional_experience"
	// SectionProjects 项目经历章节
	SectionProjects SectionKey = "projects"
	// SectionAwards 获奖经历章节
	SectionAwards SectionKey = "awards"
	// SectionCertifications 证书章节
	SectionCertifications SectionKey = "certifications"
	// SectionPublications 出版物章节
	SectionPublications SectionKey = "publications"
	// SectionVolunteer 志愿经历章节
	SectionVolunteer SectionKey = "volunteer"
)

// AllSectionKeys 按固定顺序列出全部章节键，SectionMap 的每个键都必须存在
var AllSectionKeys = []SectionKey{
	SectionProfessionalSummary,
	SectionAreasOfExpertise,
	SectionEducational,
	SectionProfessionalExperience,
	SectionProjects,
	SectionAwards,
	SectionCertifications,
	SectionPublications,
	SectionVolunteer,
}

// SectionMap 章节键到原始文本块的映射
// 不变式：各文本块是原文档中互不重叠的子串，且按文档顺序排列
type SectionMap map[SectionKey]string

// NewSectionMap 创建一个所有键均为空字符串的章节映射
func NewSectionMap() SectionMap {
	m := make(SectionMap, len(AllSectionKeys))
	for _, key := range AllSectionKeys {
		m[key] = ""
	}
	return m
}

// EntitySpan 识别引擎返回的带标签实体片段
type EntitySpan struct {
	Start int    // 在输入文本中的起始偏移
	End   int    // 结束偏移（不含）
	Label string // 实体标签，例如 "PERSON"
	Text  string // 实体原文
}

// 联系方式通道名，ContactInfo 的键来自这个固定集合
const (
	ContactEmail    = "Email"
	ContactMobile   = "Mobile"
	ContactLinkedIn = "LinkedIn"
	ContactGitHub   = "GitHub"
	ContactWebsite  = "Website"
)

// ContactInfo 通道名到单个值的映射，未命中的通道直接缺失（而非空值）
type ContactInfo map[string]string

// ExperienceEntry 一段工作经历
type ExperienceEntry struct {
	Client           string   `json:"Client"`
	Title            string   `json:"Title"`
	Duration         string   `json:"Duration"` // 原始时间段文本
	StartDate        string   `json:"StartDate,omitempty"`
	EndDate          string   `json:"EndDate,omitempty"`
	Location         string   `json:"Location,omitempty"`
	Responsibilities []string `json:"Responsibilities"`
}

// EducationEntry 一条教育经历
type EducationEntry struct {
	Degree      string `json:"Degree"`
	Field       string `json:"Field,omitempty"`
	Institution string `json:"Institution"`
	Location    string `json:"Location,omitempty"`
	Duration    string `json:"Duration,omitempty"`
	StartDate   string `json:"StartDate,omitempty"`
	EndDate     string `json:"EndDate,omitempty"`
}

// ProjectEntry 一个项目条目
type ProjectEntry struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"` // 去重后按字典序排序
	Link         string   `json:"link"`
}

// ResumeRecord 解析管线的终端聚合结果
// 所有可选字段缺省为空字符串/空序列/空映射而非省略，保证输出结构稳定
type ResumeRecord struct {
	ResumeID       string              `json:"resume_id"`
	Name           string              `json:"Name"`
	Title          string              `json:"Title"`
	Contact        ContactInfo         `json:"Contact"`
	Summary        string              `json:"Summary"`
	Skills         map[string][]string `json:"Skills"`
	Education      []EducationEntry    `json:"Education"`
	Experience     []ExperienceEntry   `json:"Experience"`
	Projects       []ProjectEntry      `json:"Projects"`
	Awards         []string            `json:"Awards"`
	Certifications []string            `json:"Certifications"`
}

// NewResumeRecord 创建一个所有字段处于空缺省值的记录
func NewResumeRecord() *ResumeRecord {
	return &ResumeRecord{
		Contact:        ContactInfo{},
		Skills:         map[string][]string{},
		Education:      []EducationEntry{},
		Experience:     []ExperienceEntry{},
		Projects:       []ProjectEntry{},
		Awards:         []string{},
		Certifications: []string{},
	}
}
