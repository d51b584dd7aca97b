// Package polynomial implements ring-generic polynomials.
//
// A Polynomial stores its coefficients highest degree first: position 0 holds
// the lead term, the last position the constant term. Nothing is trimmed
// implicitly, so Len is exactly the number of coefficients supplied.
//
//   - Plus aligns the operands at the constant term and adds term-wise.
//   - Times is the full convolution; each output coefficient is the ring-sum
//     of its partial products, folded with ring.Sum.
//   - Ring ("PolynomialRing") makes polynomials ring elements, so they nest
//     inside matrices and other polynomials.
//
// Values are immutable; every operation returns a new Polynomial.
package polynomial
