package grammar

import (
	"fmt"
	"math/rand"
	"time"
)

// Generator composes titles, body copy, tag sets and analysis findings from
// fixed vocabularies and parametrized templates. Randomness serves content
// variety only; the contract of every method is a well-formed, non-empty
// result.
type Generator struct {
	r *rand.Rand
}

// New creates a generator seeded from the wall clock.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded creates a generator with a fixed seed, for reproducible output in
// tests.
func NewSeeded(seed int64) *Generator {
	return &Generator{r: rand.New(rand.NewSource(seed))}
}

func pick(r *rand.Rand, items []string) string {
	return items[r.Intn(len(items))]
}

// intn returns a random int in [min, max).
func (g *Generator) intn(min, max int) int {
	return min + g.r.Intn(max-min)
}

// IntBetween returns a random int in [min, max). Exposed for callers that
// fabricate numeric mock data (counts, engagement figures) from the same
// seedable source as the text templates.
func (g *Generator) IntBetween(min, max int) int {
	return g.intn(min, max)
}

// Slot generators. Each returns one literal from its vocabulary.

func (g *Generator) Verb() string           { return pick(g.r, verbs) }
func (g *Generator) Adjective() string      { return pick(g.r, adjectives) }
func (g *Generator) Result() string         { return pick(g.r, results) }
func (g *Generator) TimeFrame() string      { return pick(g.r, timeFrames) }
func (g *Generator) Prefix() string         { return pick(g.r, prefixes) }
func (g *Generator) Suffix() string         { return pick(g.r, suffixes) }
func (g *Generator) Question() string       { return pick(g.r, questions) }
func (g *Generator) Answer() string         { return pick(g.r, answers) }
func (g *Generator) Ingredient() string     { return pick(g.r, ingredients) }
func (g *Generator) Frequency() string      { return pick(g.r, frequencies) }
func (g *Generator) Preparation() string    { return pick(g.r, preparations) }
func (g *Generator) Attention() string      { return pick(g.r, attentions) }
func (g *Generator) SolutionDetail() string { return pick(g.r, solutionDetails) }
func (g *Generator) Comment() string        { return pick(g.r, commentPool) }

// Experience pairs a time frame with an engagement verb, e.g. 最近研究.
func (g *Generator) Experience() string {
	return g.TimeFrame() + pick(g.r, experiences)
}

// Problem phrases a keyword-specific pain point, e.g. 敏感肌困扰.
func (g *Generator) Problem(keyword string) string {
	return keyword + pick(g.r, problems)
}

// Solution phrases a keyword-specific payoff, e.g. 敏感肌完美解决.
func (g *Generator) Solution(keyword string) string {
	return keyword + pick(g.r, solutions)
}

// ProblemDetail phrases a keyword-specific usage issue.
func (g *Generator) ProblemDetail(keyword string) string {
	return keyword + pick(g.r, problemDetails)
}

// AuthorName assembles a three-part synthetic creator name.
func (g *Generator) AuthorName() string {
	return pick(g.r, authorPrefixes) + pick(g.r, authorMiddles) + pick(g.r, authorSuffixes)
}

// SuccessFactors returns the fixed success-factor list for analysis results.
func (g *Generator) SuccessFactors() []string {
	out := make([]string, len(successFactors))
	copy(out, successFactors)
	return out
}

// Intro opens a piece of body copy.
func (g *Generator) Intro(keyword, category string) string {
	intros := []string{
		fmt.Sprintf("相信很多小伙伴和我一样，都被%s问题困扰过。今天我就来分享一下我的%s经验，希望能帮到大家！", keyword, category),
		fmt.Sprintf("%s我一直在研究%s的%s方法，终于找到了一些真正有效的技巧，迫不及待想和大家分享！", g.TimeFrame(), keyword, category),
		fmt.Sprintf("作为一个%s%s达人，我试过市面上各种各样的方法，今天就来分享那些真正有效的经验！", keyword, category),
		fmt.Sprintf("还在为%s问题烦恼吗？这篇%s笔记可能会改变你的生活！", keyword, category),
		fmt.Sprintf("%s%s其实没有那么难，掌握了正确方法，人人都能做到！今天就来分享我的心得。", keyword, category),
	}
	return pick(g.r, intros)
}

// mainPointTitles holds five label options per section position.
var mainPointTitles = [][]string{
	{"首先", "第一步", "基础准备", "开始之前", "先决条件"},
	{"接着", "第二步", "核心技巧", "关键环节", "重要发现"},
	{"然后", "第三步", "进阶方法", "实用技巧", "惊喜发现"},
	{"最后", "第四步", "终极秘诀", "完美收尾", "锦上添花"},
}

// MainPointTitle labels section index (1-based, clamped to 4).
func (g *Generator) MainPointTitle(index int) string {
	if index < 1 {
		index = 1
	}
	if index > len(mainPointTitles) {
		index = len(mainPointTitles)
	}
	return pick(g.r, mainPointTitles[index-1])
}

// MainPoint renders section index of a body, nesting a detail template.
func (g *Generator) MainPoint(keyword, category string, index int) string {
	points := []string{
		fmt.Sprintf("在开始%s%s之前，我们需要了解一些基本知识。%s这样才能为后面的步骤打好基础。", keyword, category, g.DetailedPoint(keyword, category, 1)),
		fmt.Sprintf("%s%s的核心在于%s很多人往往忽略了这一点，导致效果不佳。", keyword, category, g.DetailedPoint(keyword, category, 2)),
		fmt.Sprintf("掌握了基础后，我们可以尝试一些进阶技巧。%s这些小技巧往往能起到意想不到的效果。", g.DetailedPoint(keyword, category, 3)),
		fmt.Sprintf("最后，分享一个我的独家秘诀：%s这是我经过无数次尝试总结出来的，效果真的很惊人！", g.DetailedPoint(keyword, category, 4)),
	}
	if index < 1 {
		index = 1
	}
	if index > len(points) {
		index = len(points)
	}
	return points[index-1]
}

// DetailedPoint renders the nested detail sentence for section index.
func (g *Generator) DetailedPoint(keyword, category string, index int) string {
	details := []string{
		fmt.Sprintf("首先要选择适合自己的%s产品，不要盲目跟风。我推荐选择含有%s的产品，效果会更好。", keyword, g.Ingredient()),
		fmt.Sprintf("正确的使用方法非常重要，建议%s使用，每次使用前先%s，这样效果会更好。", g.Frequency(), g.Preparation()),
		fmt.Sprintf("在%s%s过程中，一定要注意%s，这是很多人容易忽略的细节，但却能决定最终效果。", keyword, category, g.Attention()),
		fmt.Sprintf("如果遇到%s，不要着急，可以尝试%s，通常能很快解决问题。", g.ProblemDetail(keyword), g.SolutionDetail()),
	}
	if index < 1 {
		index = 1
	}
	if index > len(details) {
		index = len(details)
	}
	return details[index-1]
}

// Conclusion closes a piece of body copy.
func (g *Generator) Conclusion(keyword, category string) string {
	conclusions := []string{
		fmt.Sprintf("以上就是我关于%s%s的全部分享，希望能对你有所帮助！记住，坚持才是最重要的，效果不是一蹴而就的，需要一定的时间和耐心。", keyword, category),
		fmt.Sprintf("总的来说，%s%s并不复杂，掌握了正确的方法，坚持下去，一定会看到明显的效果。希望我的分享能给你带来一些启发！", keyword, category),
		fmt.Sprintf("%s%s的道路上，每个人都可能遇到不同的问题，但只要方法正确，总能找到适合自己的解决方案。希望我的经验能为你提供一些参考！", keyword, category),
		fmt.Sprintf("最后想说，%s%s没有绝对的标准答案，最重要的是找到适合自己的方法。希望通过我的分享，你能少走一些弯路，更快地看到效果！", keyword, category),
		fmt.Sprintf("感谢你看到这里！%s%s是一个需要不断学习和尝试的过程，希望我的分享能成为你旅程中的一盏明灯。如果有任何问题，欢迎在评论区交流！", keyword, category),
	}
	return pick(g.r, conclusions)
}
