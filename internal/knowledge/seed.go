package knowledge

// SeedCorpus is loaded into an empty index on first initialization so
// the store is never empty after a successful init.
func SeedCorpus() []Document {
	return []Document{
		{
			ID:       "calc_derivative_1",
			Question: "What is the derivative of x²?",
			Answer: `**Step-by-step solution:**

1. **Identify the function:** f(x) = x²
2. **Apply the power rule:** For f(x) = xⁿ, f'(x) = n·xⁿ⁻¹
3. **Calculate:** f'(x) = 2·x²⁻¹ = 2x
4. **Verify:** The derivative of x² is 2x

**Key concept:** The power rule is fundamental in calculus for finding derivatives of polynomial functions.`,
			Topic:      "calculus",
			Difficulty: "basic",
		},
		{
			ID:       "algebra_quadratic_1",
			Question: "How do you solve a quadratic equation?",
			Answer: `**Step-by-step solution for ax² + bx + c = 0:**

1. **Identify coefficients:** a, b, and c
2. **Apply quadratic formula:** x = (-b ± √(b² - 4ac)) / (2a)
3. **Calculate discriminant:** Δ = b² - 4ac
4. **Determine solutions:**
   - If Δ > 0: Two real solutions
   - If Δ = 0: One real solution
   - If Δ < 0: Two complex solutions

**Example:** For x² - 5x + 6 = 0
- a = 1, b = -5, c = 6
- x = (5 ± √(25 - 24)) / 2 = (5 ± 1) / 2
- Solutions: x = 3 or x = 2`,
			Topic:      "algebra",
			Difficulty: "intermediate",
		},
		{
			ID:       "geometry_pythagorean_1",
			Question: "What is the Pythagorean theorem?",
			Answer: `**The Pythagorean Theorem:**

1. **Statement:** In a right triangle, a² + b² = c²
2. **Where:**
   - a and b are the lengths of the legs
   - c is the length of the hypotenuse (longest side)
3. **Application steps:**
   - Identify the right triangle
   - Label the sides (legs and hypotenuse)
   - Substitute known values
   - Solve for the unknown side

**Example:** If legs are 3 and 4 units:
- a² + b² = c²
- 3² + 4² = c²
- 9 + 16 = c²
- c = √25 = 5 units`,
			Topic:      "geometry",
			Difficulty: "basic",
		},
	}
}
