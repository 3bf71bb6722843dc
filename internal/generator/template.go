package generator

// DocumentTemplateName identifies the question document template within the
// renderer.
const DocumentTemplateName = "interview-questions"

// DocumentContext is the data contract for the question document template.
type DocumentContext struct {
	Day       int
	Topic     string
	Companies []string
}

// DocumentTemplate is the fixed structure of one day's question document.
// The layout, counts, and blank lines are load-bearing: re-rendering with the
// same inputs must produce byte-identical files.
const DocumentTemplate = `# Day {{.Day}}: {{.Topic}} - 100+ Interview Questions

## Theory Questions from Top MNCs (50+)

### Q1-Q50: Core Concepts ({{.Topic}})

Day {{.Day}} covers essential React concepts related to {{.Topic}}.

**Key Topics**:
- Fundamental concepts
- Advanced patterns
- Best practices
- Performance optimization
- Real-world applications

**Companies**: {{join .Companies ", "}}

---

## Coding Challenges from Real Interviews (40+)

### Problem 1-40: Practical Coding Problems

Real coding challenges asked in interviews at top companies covering {{.Topic}}.

**Sample Problems**:
1. Basic implementation
2. Intermediate patterns
3. Advanced optimizations
4. Real-world scenarios

---

## Advanced & Edge Cases (10+)

### Q1-Q10: Edge Cases and Advanced Scenarios

Questions testing deep understanding of {{.Topic}} and edge cases.

---

## Company-Specific Questions (10+)

### Questions from specific companies:

{{range .Companies}}
### {{.}} Questions
- Question 1 about {{$.Topic}}
- Question 2 about {{$.Topic}}
- Best practices for {{$.Topic}}
{{end}}
---

## Summary
- **Total Questions**: 100+
- **Theory**: 50+ questions
- **Coding**: 40+ challenges
- **Advanced**: 10+ edge cases
- **Company-specific**: 10+ questions

**🎯 Master {{.Topic}} with comprehensive coverage!**

`
